package models

import "time"

// SearchResponse represents the response from a search submission
type SearchResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	JobCount  int    `json:"jobCount"`
	SearchID  string `json:"searchId"`
	Synthetic bool   `json:"synthetic"`
}

// StatusResponse represents the response for a status poll
type StatusResponse struct {
	SearchID    string `json:"search_id,omitempty"`
	Running     bool   `json:"running"`
	TotalJobs   int    `json:"total_jobs"`
	Message     string `json:"message"`
	Progress    int    `json:"progress"`
	SearchQuery string `json:"search_query"`
	Location    string `json:"location"`
	Synthetic   bool   `json:"synthetic"`
}

// ResultsResponse represents one page of stored job results
type ResultsResponse struct {
	Jobs      []JobRecord `json:"jobs"`
	Total     int         `json:"total"`
	Page      int         `json:"page"`
	PerPage   int         `json:"per_page"`
	HasMore   bool        `json:"has_more"`
	SearchID  string      `json:"search_id,omitempty"`
	Synthetic bool        `json:"synthetic"`
}

// NormalizeResponse represents the normalized view of a parsed-resume blob
type NormalizeResponse struct {
	Success   bool           `json:"success"`
	Profile   *ResumeProfile `json:"profile"`
	RequestID string         `json:"request_id"`
}

// ParsedResumeResponse represents a stored parsed-resume blob together with
// its normalized profile
type ParsedResumeResponse struct {
	ResumeID  string         `json:"resume_id"`
	Data      interface{}    `json:"data"`
	Profile   *ResumeProfile `json:"profile"`
	Timestamp time.Time      `json:"timestamp"`
}

// CoverLetterResponse represents the response from cover letter generation
type CoverLetterResponse struct {
	Success        bool          `json:"success"`
	CoverLetter    string        `json:"cover_letter"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
