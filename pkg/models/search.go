package models

import "time"

// SearchStatus is the status snapshot for one job-search submission. It is
// created in the running state at submission time and mutated exactly once to
// a terminal state after the upstream call resolves.
type SearchStatus struct {
	Running     bool      `json:"running"`
	Progress    int       `json:"progress"`
	Message     string    `json:"message"`
	TotalJobs   int       `json:"total_jobs"`
	SearchQuery string    `json:"search_query"`
	Location    string    `json:"location"`
	Error       string    `json:"error,omitempty"`
	Synthetic   bool      `json:"synthetic"`
	Timestamp   time.Time `json:"timestamp"`
}

// SearchDocument is the full persisted record for one search: the job array
// and its status live in a single document so the two are written atomically.
type SearchDocument struct {
	SearchID  string       `json:"search_id"`
	Jobs      []JobRecord  `json:"jobs"`
	Total     int          `json:"total"`
	Synthetic bool         `json:"synthetic"`
	Status    SearchStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewRunningStatus returns the initial status written at submission time.
func NewRunningStatus(query, location string) SearchStatus {
	return SearchStatus{
		Running:     true,
		Progress:    0,
		Message:     "Search in progress",
		SearchQuery: query,
		Location:    location,
		Timestamp:   time.Now(),
	}
}

// DefaultSearchStatus is returned by the status reader when no search has
// ever been stored. Pollers always get a well-formed record.
func DefaultSearchStatus() SearchStatus {
	return SearchStatus{
		Running:   false,
		Progress:  100,
		Message:   "No recent searches",
		TotalJobs: 0,
		Timestamp: time.Now(),
	}
}
