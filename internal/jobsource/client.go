package jobsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"talexu-jobs/internal/config"
	"talexu-jobs/internal/llm/processors"
	"talexu-jobs/internal/logging"
	"talexu-jobs/pkg/models"
)

// Client fetches job postings from the external scraper service. It never
// fails: any upstream problem (non-2xx, error body, malformed payload,
// timeout, rejected rate-limit permit) degrades to the synthetic generator
// so a search always yields data. Callers learn which via the synthetic
// return value.
type Client struct {
	cfg     *config.Config
	client  *http.Client
	limiter *rate.Limiter
	cleaner *processors.HTMLCleaner
	logger  logging.Logger
}

// scrapeRequest is the payload contract of the scraper upstream
type scrapeRequest struct {
	JobTitle string `json:"jobTitle"`
	Location string `json:"location"`
	MaxJobs  int    `json:"maxJobs"`
}

// upstreamJob mirrors one job object as returned by the scraper. Date fields
// arrive as strings in whatever format the scraper produced.
type upstreamJob struct {
	JobID       string `json:"job_id"`
	JobTitle    string `json:"job_title"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	SalaryText  string `json:"salary_text"`
	PostedText  string `json:"posted_text"`
	PostedDate  string `json:"posted_date"`
	JobURL      string `json:"job_url"`
	CreatedAt   string `json:"created_at"`
}

// NewClient creates a job source client
func NewClient(cfg *config.Config) *Client {
	rps := rate.Limit(float64(cfg.JobSource.RateLimit) / 60.0)

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.JobSource.Timeout,
		},
		limiter: rate.NewLimiter(rps, cfg.JobSource.Burst),
		cleaner: processors.NewHTMLCleaner(),
		logger:  logging.GetGlobalLogger(),
	}
}

// FetchJobs returns the job postings for a title and location. The second
// return value reports whether the records are synthetic fallback data.
func (c *Client) FetchJobs(ctx context.Context, jobTitle, location string) ([]models.JobRecord, bool) {
	if c.cfg.JobSource.URL == "" {
		c.logger.Warn("Job scraper URL not configured, using synthetic jobs")
		return GenerateMockJobs(jobTitle, location), true
	}

	if !c.limiter.Allow() {
		c.logger.Warn("Outbound scrape rate limit exceeded, using synthetic jobs", map[string]interface{}{
			"job_title": jobTitle,
			"location":  location,
		})
		return GenerateMockJobs(jobTitle, location), true
	}

	jobs, err := c.scrape(ctx, jobTitle, location)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"job_title": jobTitle,
			"location":  location,
			"error":     err.Error(),
		}).Warn("Scraper upstream failed, using synthetic jobs")
		return GenerateMockJobs(jobTitle, location), true
	}

	return jobs, false
}

// scrape performs a single attempt against the scraper upstream
func (c *Client) scrape(ctx context.Context, jobTitle, location string) ([]models.JobRecord, error) {
	payload, err := json.Marshal(scrapeRequest{
		JobTitle: jobTitle,
		Location: location,
		MaxJobs:  c.cfg.JobSource.MaxJobs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scrape request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.JobSource.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.JobSource.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.JobSource.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scrape response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scraper returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	return c.parseResponse(body)
}

// parseResponse accepts either a bare JSON array of job objects or an
// {error} envelope; anything else counts as a failure
func (c *Client) parseResponse(body []byte) ([]models.JobRecord, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 || trimmed[0] != '[' {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Error != "" {
			return nil, fmt.Errorf("scraper error: %s", envelope.Error)
		}
		return nil, fmt.Errorf("unexpected scraper response: %s", truncate(string(trimmed), 200))
	}

	var raw []upstreamJob
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode scraper response: %w", err)
	}

	now := time.Now()
	jobs := make([]models.JobRecord, 0, len(raw))
	for i, item := range raw {
		jobs = append(jobs, c.normalizeJob(item, i, now))
	}
	return jobs, nil
}

// normalizeJob maps one upstream object onto the stored record shape
func (c *Client) normalizeJob(item upstreamJob, index int, now time.Time) models.JobRecord {
	title := item.JobTitle
	if title == "" {
		title = item.Title
	}

	jobID := item.JobID
	if jobID == "" {
		jobID = fmt.Sprintf("job_%d_%d", now.UnixMilli(), index)
	}

	description := item.Description
	if c.cleaner.ContainsMarkup(description) {
		description = c.cleaner.ExtractText(description)
	}

	return models.JobRecord{
		JobID:       jobID,
		JobTitle:    title,
		Company:     item.Company,
		Location:    item.Location,
		Description: description,
		SalaryText:  item.SalaryText,
		PostedText:  item.PostedText,
		PostedDate:  parseTimestamp(item.PostedDate, now),
		JobURL:      item.JobURL,
		CreatedAt:   parseTimestamp(item.CreatedAt, now),
	}
}

// parseTimestamp tries the formats the scraper has been seen to emit
func parseTimestamp(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return fallback
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
