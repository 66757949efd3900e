package models

// ContactInfo is the normalized contact section derived from a parsed-resume
// blob. All fields are best-effort; absent data stays empty.
type ContactInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	LinkedIn   string `json:"linkedin"`
}

// WorkExperienceEntry is one normalized position from the work-experience
// section of a parsed resume.
type WorkExperienceEntry struct {
	ID               string   `json:"id"`
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry is one normalized entry from the education section of a
// parsed resume.
type EducationEntry struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
}

// ResumeProfile bundles every normalized section for one parsed resume.
type ResumeProfile struct {
	Contact        ContactInfo           `json:"contact"`
	WorkExperience []WorkExperienceEntry `json:"work_experience"`
	Education      []EducationEntry      `json:"education"`
	Skills         []string              `json:"skills"`
}
