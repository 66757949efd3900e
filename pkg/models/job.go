package models

import "time"

// JobRecord represents a single job posting returned by the scraper upstream
// or by the synthetic fallback generator. Records are created in bulk per
// search and are immutable once stored.
type JobRecord struct {
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SalaryText  string    `json:"salary_text"`
	PostedText  string    `json:"posted_text"`
	PostedDate  time.Time `json:"posted_date"`
	JobURL      string    `json:"job_url"`
	CreatedAt   time.Time `json:"created_at"`
}
