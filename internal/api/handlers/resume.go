package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/normalizer"
	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"
	"talexu-jobs/pkg/utils"

	"github.com/labstack/echo/v4"
)

// NormalizeResumeHandler normalizes an arbitrary parsed-resume blob into the
// canonical profile shape without storing it
func NormalizeResumeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Failed to read request body",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if !json.Valid(body) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Request body must be valid JSON",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		profile := normalizer.NormalizeProfile(body)

		logger.WithFields(map[string]interface{}{
			"experience_entries": len(profile.WorkExperience),
			"education_entries":  len(profile.Education),
			"skills":             len(profile.Skills),
		}).Info("Resume data normalized")

		return c.JSON(http.StatusOK, models.NormalizeResponse{
			Success:   true,
			Profile:   profile,
			RequestID: requestID,
		})
	}
}

// StoreParsedResumeHandler stores a parsed-resume blob under the given id
func StoreParsedResumeHandler(store storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)
		resumeID := c.Param("id")

		if resumeID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Resume id is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		body, err := io.ReadAll(c.Request().Body)
		if err != nil || !json.Valid(body) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Request body must be valid JSON",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := store.PutParsedResume(c.Request().Context(), resumeID, body); err != nil {
			logger.WithField("error", err.Error()).Error("Failed to store parsed resume")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "storage_failed",
				Message:   "Failed to store parsed resume",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("resume_id", resumeID).Info("Parsed resume stored")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"resume_id":  resumeID,
			"request_id": requestID,
		})
	}
}

// GetParsedResumeHandler returns a stored parsed-resume blob together with
// its normalized profile
func GetParsedResumeHandler(store storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		parsed, err := store.GetParsedResume(c.Request().Context(), resumeID)
		if err != nil {
			return resumeLookupError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.ParsedResumeResponse{
			ResumeID:  parsed.ResumeID,
			Data:      parsed.Data,
			Profile:   normalizer.NormalizeProfile(parsed.Data),
			Timestamp: parsed.Timestamp,
		})
	}
}

// resumeLookupError maps a parsed-resume read failure onto the error envelope
func resumeLookupError(c echo.Context, requestID string, err error) error {
	custom := utils.NewInternalServerError("Failed to load parsed resume")
	label := "storage_failed"
	if errors.Is(err, storage.ErrNotFound) {
		custom = utils.NewNotFoundError("No parsed resume stored for this id")
		label = "not_found"
	}

	return c.JSON(custom.Code, models.ErrorResponse{
		Error:     label,
		Message:   custom.Message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
