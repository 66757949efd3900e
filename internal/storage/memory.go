package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"talexu-jobs/pkg/models"
)

// MemoryStore implements Store with in-process maps. It backs tests and the
// single-instance "storage: memory" mode; state does not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	searches map[string]*models.SearchDocument
	resumes  map[string]*ParsedResume
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		searches: make(map[string]*models.SearchDocument),
		resumes:  make(map[string]*ParsedResume),
	}
}

// PutSearch stores a copy of the document
func (s *MemoryStore) PutSearch(ctx context.Context, doc *models.SearchDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *doc
	s.searches[doc.SearchID] = &cp
	return nil
}

// GetSearch returns the document for an explicit search identifier
func (s *MemoryStore) GetSearch(ctx context.Context, searchID string) (*models.SearchDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.searches[searchID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

// LatestSearch returns the document with the newest write timestamp
func (s *MemoryStore) LatestSearch(ctx context.Context) (*models.SearchDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.SearchDocument
	for _, doc := range s.searches {
		if latest == nil || doc.Timestamp.After(latest.Timestamp) {
			latest = doc
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

// PurgeOlderThan removes documents written before the cutoff
func (s *MemoryStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, doc := range s.searches {
		if doc.Timestamp.Before(cutoff) {
			delete(s.searches, id)
			removed++
		}
	}
	return removed, nil
}

// PutParsedResume stores a parser-output blob
func (s *MemoryStore) PutParsedResume(ctx context.Context, resumeID string, data json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumes[resumeID] = &ParsedResume{
		ResumeID:  resumeID,
		Data:      append(json.RawMessage(nil), data...),
		Timestamp: time.Now(),
	}
	return nil
}

// GetParsedResume fetches a stored parser-output blob
func (s *MemoryStore) GetParsedResume(ctx context.Context, resumeID string) (*ParsedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.resumes[resumeID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *record
	return &cp, nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
