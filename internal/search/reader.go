package search

import (
	"context"
	"errors"

	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"
)

const defaultPerPage = 50

// Reader serves status polls and paginated results. Reads are keyed by the
// search identifier returned from submission; when no identifier is given
// the most recently written document is used, which under concurrent users
// is last-writer-wins.
type Reader struct {
	store storage.SearchStore
}

// NewReader creates a reader over the search store
func NewReader(store storage.SearchStore) *Reader {
	return &Reader{store: store}
}

// GetStatus returns the status snapshot for a search, or a default "no
// recent searches" record when nothing has been stored yet. Pollers always
// receive a well-formed record.
func (r *Reader) GetStatus(ctx context.Context, searchID string) (*models.StatusResponse, error) {
	doc, err := r.lookup(ctx, searchID)
	if errors.Is(err, storage.ErrNotFound) {
		status := models.DefaultSearchStatus()
		return &models.StatusResponse{
			Running:   status.Running,
			TotalJobs: status.TotalJobs,
			Message:   status.Message,
			Progress:  status.Progress,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.StatusResponse{
		SearchID:    doc.SearchID,
		Running:     doc.Status.Running,
		TotalJobs:   doc.Status.TotalJobs,
		Message:     doc.Status.Message,
		Progress:    doc.Status.Progress,
		SearchQuery: doc.Status.SearchQuery,
		Location:    doc.Status.Location,
		Synthetic:   doc.Status.Synthetic,
	}, nil
}

// GetResults returns one page of stored jobs. Out-of-range pages yield an
// empty page, never an error.
func (r *Reader) GetResults(ctx context.Context, searchID string, page, perPage int) (*models.ResultsResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	doc, err := r.lookup(ctx, searchID)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.ResultsResponse{
			Jobs:    []models.JobRecord{},
			Total:   0,
			Page:    page,
			PerPage: perPage,
			HasMore: false,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	total := len(doc.Jobs)
	startIndex := (page - 1) * perPage
	endIndex := startIndex + perPage

	jobs := []models.JobRecord{}
	if startIndex < total {
		if endIndex > total {
			jobs = doc.Jobs[startIndex:total]
		} else {
			jobs = doc.Jobs[startIndex:endIndex]
		}
	}

	return &models.ResultsResponse{
		Jobs:      jobs,
		Total:     total,
		Page:      page,
		PerPage:   perPage,
		HasMore:   endIndex < total,
		SearchID:  doc.SearchID,
		Synthetic: doc.Synthetic,
	}, nil
}

// lookup resolves an explicit search identifier, falling back to the latest
// document when none is given
func (r *Reader) lookup(ctx context.Context, searchID string) (*models.SearchDocument, error) {
	if searchID != "" {
		return r.store.GetSearch(ctx, searchID)
	}
	return r.store.LatestSearch(ctx)
}
