package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talexu-jobs/pkg/models"
)

func TestMemoryStoreSearchRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := &models.SearchDocument{
		SearchID:  "search_1_abc",
		Jobs:      []models.JobRecord{{JobID: "j1", JobTitle: "Engineer"}},
		Total:     1,
		Timestamp: time.Now(),
	}

	if err := store.PutSearch(ctx, doc); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.GetSearch(ctx, "search_1_abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Total != 1 || got.Jobs[0].JobID != "j1" {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.GetSearch(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.LatestSearch(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from empty latest, got %v", err)
	}
}

func TestMemoryStoreOverwriteLastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "s1", Total: 1, Timestamp: time.Now()})
	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "s1", Total: 9, Timestamp: time.Now()})

	got, err := store.GetSearch(ctx, "s1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Total != 9 {
		t.Errorf("expected overwrite, got total=%d", got.Total)
	}
}

func TestMemoryStoreLatestSearch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "old", Timestamp: base.Add(-time.Hour)})
	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "new", Timestamp: base})
	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "older", Timestamp: base.Add(-2 * time.Hour)})

	latest, err := store.LatestSearch(ctx)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.SearchID != "new" {
		t.Errorf("expected newest document, got %s", latest.SearchID)
	}
}

func TestMemoryStorePurgeOlderThan(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "ancient", Timestamp: base.Add(-48 * time.Hour)})
	_ = store.PutSearch(ctx, &models.SearchDocument{SearchID: "recent", Timestamp: base})

	removed, err := store.PurgeOlderThan(ctx, base.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if _, err := store.GetSearch(ctx, "ancient"); !errors.Is(err, ErrNotFound) {
		t.Error("expected purged document to be gone")
	}
	if _, err := store.GetSearch(ctx, "recent"); err != nil {
		t.Errorf("expected recent document to survive: %v", err)
	}
}

func TestMemoryStoreParsedResumeRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	blob := json.RawMessage(`{"Full Name": "Ada Lovelace"}`)

	if err := store.PutParsedResume(ctx, "resume-1", blob); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.GetParsedResume(ctx, "resume-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ResumeID != "resume-1" {
		t.Errorf("unexpected id: %s", got.ResumeID)
	}
	if string(got.Data) != string(blob) {
		t.Errorf("blob mutated: %s", got.Data)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp set on write")
	}

	if _, err := store.GetParsedResume(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
