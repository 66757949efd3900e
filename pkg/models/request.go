package models

// SearchRequest represents the request payload for submitting a job search
type SearchRequest struct {
	JobTitle string `json:"jobTitle" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// CoverLetterRequest represents the request payload for generating a cover
// letter from a stored parsed resume and a target position
type CoverLetterRequest struct {
	ResumeID       string `json:"resume_id" validate:"required"`
	Position       string `json:"position" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}
