package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talexu-jobs/internal/search"
	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"

	"github.com/labstack/echo/v4"
)

type fixedSource struct {
	count     int
	synthetic bool
}

func (f *fixedSource) FetchJobs(ctx context.Context, jobTitle, location string) ([]models.JobRecord, bool) {
	jobs := make([]models.JobRecord, f.count)
	for i := range jobs {
		jobs[i] = models.JobRecord{JobID: "j", JobTitle: jobTitle, Location: location}
	}
	return jobs, f.synthetic
}

func newSearchEnv(count int, synthetic bool) (*search.Orchestrator, *search.Reader, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	orch := search.NewOrchestrator(store, &fixedSource{count: count, synthetic: synthetic})
	return orch, search.NewReader(store), store
}

func TestSearchHandlerSuccess(t *testing.T) {
	orch, _, _ := newSearchEnv(3, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/search",
		strings.NewReader(`{"jobTitle": "Engineer", "location": "Berlin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := SearchHandler(orch)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.JobCount != 3 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.HasPrefix(resp.SearchID, "search_") {
		t.Errorf("unexpected search id: %s", resp.SearchID)
	}
}

func TestSearchHandlerValidation(t *testing.T) {
	orch, _, _ := newSearchEnv(0, false)
	e := echo.New()

	for _, body := range []string{
		`{"jobTitle": "Engineer"}`,
		`{"location": "Berlin"}`,
		`{}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/jobs/search", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		if err := SearchHandler(orch)(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestStatusHandlerAfterSearch(t *testing.T) {
	orch, reader, _ := newSearchEnv(5, true)

	result, err := orch.SubmitSearch(context.Background(), "Engineer", "Berlin")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/status?search_id="+result.SearchID, nil)
	rec := httptest.NewRecorder()

	if err := StatusHandler(reader)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var status models.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if status.Running {
		t.Error("expected terminal status")
	}
	if status.TotalJobs != 5 || !status.Synthetic {
		t.Errorf("unexpected status: %+v", status)
	}
}

func TestStatusHandlerDefault(t *testing.T) {
	_, reader, _ := newSearchEnv(0, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/status", nil)
	rec := httptest.NewRecorder()

	if err := StatusHandler(reader)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var status models.StatusResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &status)
	if status.Running || status.Progress != 100 {
		t.Errorf("unexpected default status: %+v", status)
	}
}

func TestResultsHandlerPagination(t *testing.T) {
	orch, reader, _ := newSearchEnv(57, false)

	result, err := orch.SubmitSearch(context.Background(), "Engineer", "Berlin")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/jobs/results?search_id="+result.SearchID+"&page=3&per_page=25", nil)
	rec := httptest.NewRecorder()

	if err := ResultsHandler(reader)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp models.ResultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(resp.Jobs) != 7 {
		t.Errorf("expected 7 jobs on the last page, got %d", len(resp.Jobs))
	}
	if resp.HasMore {
		t.Error("expected has_more=false on the last page")
	}
	if resp.Total != 57 {
		t.Errorf("expected total 57, got %d", resp.Total)
	}
}

func TestResultsHandlerBadParamsFallBack(t *testing.T) {
	orch, reader, _ := newSearchEnv(10, false)
	_, _ = orch.SubmitSearch(context.Background(), "Engineer", "Berlin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/results?page=abc&per_page=-2", nil)
	rec := httptest.NewRecorder()

	if err := ResultsHandler(reader)(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp models.ResultsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Page != 1 || resp.PerPage != 50 {
		t.Errorf("expected clamped paging, got page=%d per_page=%d", resp.Page, resp.PerPage)
	}
	if len(resp.Jobs) != 10 {
		t.Errorf("expected all 10 jobs, got %d", len(resp.Jobs))
	}
}
