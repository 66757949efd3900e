package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/search"
	"talexu-jobs/pkg/models"
	"talexu-jobs/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// SearchHandler accepts a new job search, runs it to completion and returns
// the stored result summary
func SearchHandler(orchestrator *search.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Job search request received")

		var req models.SearchRequest
		if err := c.Bind(&req); err != nil {
			logger.WithField("error", err.Error()).Error("Failed to bind request")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.WithField("error", err.Error()).Error("Request validation failed")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Job title and location are required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		result, err := orchestrator.SubmitSearch(c.Request().Context(), req.JobTitle, req.Location)
		if err != nil {
			return searchError(c, requestID, err)
		}

		logger.WithFields(map[string]interface{}{
			"search_id":       result.SearchID,
			"job_count":       result.JobCount,
			"synthetic":       result.Synthetic,
			"processing_time": time.Since(startTime),
		}).Info("Job search completed")

		return c.JSON(http.StatusOK, models.SearchResponse{
			Success:   true,
			Message:   "Job search completed",
			JobCount:  result.JobCount,
			SearchID:  result.SearchID,
			Synthetic: result.Synthetic,
		})
	}
}

// StatusHandler reports the stored status of a search. Without a search_id it
// falls back to the most recent search, and to an idle default when nothing
// has been stored yet.
func StatusHandler(reader *search.Reader) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		status, err := reader.GetStatus(c.Request().Context(), c.QueryParam("search_id"))
		if err != nil {
			return searchError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, status)
	}
}

// ResultsHandler returns one page of a search's stored jobs
func ResultsHandler(reader *search.Reader) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		page := parseIntParam(c.QueryParam("page"), 1)
		perPage := parseIntParam(c.QueryParam("per_page"), 0)

		results, err := reader.GetResults(c.Request().Context(), c.QueryParam("search_id"), page, perPage)
		if err != nil {
			return searchError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, results)
	}
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// searchError maps a CustomError onto the standard error envelope
func searchError(c echo.Context, requestID string, err error) error {
	var custom *utils.CustomError
	if errors.As(err, &custom) {
		return c.JSON(custom.Code, models.ErrorResponse{
			Error:     "search_failed",
			Message:   custom.Message,
			RequestID: requestID,
			Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
