package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"

	"github.com/labstack/echo/v4"
)

func TestNormalizeResumeHandler(t *testing.T) {
	e := echo.New()
	body := `{
		"Full Name": "Ada Lovelace",
		"email": "ada@example.com",
		"Skills": ["Go", "SQL"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/resume/normalize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := NormalizeResumeHandler()(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.NormalizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !resp.Success || resp.Profile == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Profile.Contact.FirstName != "Ada" {
		t.Errorf("unexpected contact: %+v", resp.Profile.Contact)
	}
	if len(resp.Profile.Skills) != 2 {
		t.Errorf("unexpected skills: %v", resp.Profile.Skills)
	}
}

func TestNormalizeResumeHandlerRejectsInvalidJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/resume/normalize", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	if err := NormalizeResumeHandler()(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestParsedResumeStoreAndGet(t *testing.T) {
	store := storage.NewMemoryStore()
	e := echo.New()

	blob := `{"Full Name": "Alan Turing", "Skills": "Math, Cryptography"}`
	req := httptest.NewRequest(http.MethodPut, "/api/resume/parsed/resume-1", strings.NewReader(blob))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("resume-1")

	if err := StoreParsedResumeHandler(store)(c); err != nil {
		t.Fatalf("store handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/resume/parsed/resume-1", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("resume-1")

	if err := GetParsedResumeHandler(store)(c); err != nil {
		t.Fatalf("get handler error: %v", err)
	}

	var resp models.ParsedResumeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.ResumeID != "resume-1" {
		t.Errorf("unexpected resume id: %s", resp.ResumeID)
	}
	if resp.Profile == nil || resp.Profile.Contact.FirstName != "Alan" {
		t.Errorf("expected normalized profile alongside blob: %+v", resp.Profile)
	}
	if len(resp.Profile.Skills) != 2 {
		t.Errorf("unexpected skills: %v", resp.Profile.Skills)
	}
}

func TestGetParsedResumeNotFound(t *testing.T) {
	store := storage.NewMemoryStore()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/resume/parsed/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := GetParsedResumeHandler(store)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
