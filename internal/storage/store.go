package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talexu-jobs/pkg/models"
)

// ErrNotFound is returned when no document exists for the requested key
var ErrNotFound = errors.New("document not found")

// SearchStore persists search documents. One document holds both the job
// array and the status snapshot for a search, so a single put covers both.
type SearchStore interface {
	// PutSearch writes the full document for a search, overwriting any
	// previous version (last write wins)
	PutSearch(ctx context.Context, doc *models.SearchDocument) error

	// GetSearch returns the document for an explicit search identifier
	GetSearch(ctx context.Context, searchID string) (*models.SearchDocument, error)

	// LatestSearch returns the most recently written document, ordered by
	// write timestamp
	LatestSearch(ctx context.Context) (*models.SearchDocument, error)

	// PurgeOlderThan removes documents written before the cutoff and
	// returns the number removed
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// ParsedResume is a stored parser-output blob for one uploaded resume. The
// blob is opaque; its schema varies by parser version.
type ParsedResume struct {
	ResumeID  string          `json:"resume_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// ResumeStore persists parsed-resume blobs keyed by resume identifier.
type ResumeStore interface {
	PutParsedResume(ctx context.Context, resumeID string, data json.RawMessage) error
	GetParsedResume(ctx context.Context, resumeID string) (*ParsedResume, error)
}

// Store combines both stores behind one backend.
type Store interface {
	SearchStore
	ResumeStore

	Ping(ctx context.Context) error
	Close() error
}
