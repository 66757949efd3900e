package search

import (
	"context"
	"fmt"
	"time"

	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"
	"talexu-jobs/pkg/utils"
)

// JobSource produces the job records for a search. Implementations must not
// fail; degraded results are reported through the synthetic flag.
type JobSource interface {
	FetchJobs(ctx context.Context, jobTitle, location string) (jobs []models.JobRecord, synthetic bool)
}

// SubmitResult is what a successful submission returns to the handler
type SubmitResult struct {
	SearchID  string
	JobCount  int
	Synthetic bool
}

// Orchestrator drives one search submission end to end: generate the
// identifier, record the running status, fetch, persist the terminal
// document. A single fetch attempt per submission; concurrent submissions
// are fully independent documents.
type Orchestrator struct {
	store  storage.SearchStore
	source JobSource
	logger logging.Logger
}

// NewOrchestrator creates a search orchestrator
func NewOrchestrator(store storage.SearchStore, source JobSource) *Orchestrator {
	return &Orchestrator{
		store:  store,
		source: source,
		logger: logging.GetGlobalLogger(),
	}
}

// SubmitSearch runs a search for a job title and location
func (o *Orchestrator) SubmitSearch(ctx context.Context, jobTitle, location string) (*SubmitResult, error) {
	if jobTitle == "" || location == "" {
		return nil, utils.NewBadRequestError("Job title and location are required")
	}

	searchID := utils.GenerateSearchID()
	logger := o.logger.WithField("search_id", searchID)

	running := &models.SearchDocument{
		SearchID:  searchID,
		Jobs:      []models.JobRecord{},
		Status:    models.NewRunningStatus(jobTitle, location),
		Timestamp: time.Now(),
	}
	if err := o.store.PutSearch(ctx, running); err != nil {
		logger.WithFields(map[string]interface{}{"error": err.Error()}).Error("Failed to record search start")
		return nil, utils.NewSearchFailedError(fmt.Sprintf("failed to record search start: %v", err))
	}

	logger.WithFields(map[string]interface{}{
		"job_title": jobTitle,
		"location":  location,
	}).Info("Search started")

	jobs, synthetic := o.source.FetchJobs(ctx, jobTitle, location)

	completed := &models.SearchDocument{
		SearchID:  searchID,
		Jobs:      jobs,
		Total:     len(jobs),
		Synthetic: synthetic,
		Status: models.SearchStatus{
			Running:     false,
			Progress:    100,
			Message:     fmt.Sprintf("Found %d jobs", len(jobs)),
			TotalJobs:   len(jobs),
			SearchQuery: jobTitle,
			Location:    location,
			Synthetic:   synthetic,
			Timestamp:   time.Now(),
		},
		Timestamp: time.Now(),
	}
	if err := o.store.PutSearch(ctx, completed); err != nil {
		o.recordFailure(ctx, searchID, jobTitle, location, err)
		return nil, utils.NewSearchFailedError(fmt.Sprintf("failed to store search results: %v", err))
	}

	logger.WithFields(map[string]interface{}{
		"job_count": len(jobs),
		"synthetic": synthetic,
	}).Info("Search completed")

	return &SubmitResult{
		SearchID:  searchID,
		JobCount:  len(jobs),
		Synthetic: synthetic,
	}, nil
}

// recordFailure writes a terminal failed status. Best effort: if this write
// fails too there is nothing left to do but log.
func (o *Orchestrator) recordFailure(ctx context.Context, searchID, jobTitle, location string, cause error) {
	failed := &models.SearchDocument{
		SearchID: searchID,
		Jobs:     []models.JobRecord{},
		Status: models.SearchStatus{
			Running:     false,
			Progress:    0,
			Message:     "Search failed",
			SearchQuery: jobTitle,
			Location:    location,
			Error:       cause.Error(),
			Timestamp:   time.Now(),
		},
		Timestamp: time.Now(),
	}

	if err := o.store.PutSearch(ctx, failed); err != nil {
		o.logger.WithFields(map[string]interface{}{
			"search_id": searchID,
			"error":     err.Error(),
		}).Error("Failed to record search failure")
	}
}
