package handlers

import (
	"net/http"
	"time"

	"talexu-jobs/internal/llm"
	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/normalizer"
	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"
	"talexu-jobs/pkg/utils"

	"github.com/labstack/echo/v4"
)

// CoverLetterHandler generates a cover letter for a stored resume and a
// target position
func CoverLetterHandler(llmManager *llm.Manager, store storage.ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.CoverLetterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		parsed, err := store.GetParsedResume(c.Request().Context(), req.ResumeID)
		if err != nil {
			return resumeLookupError(c, requestID, err)
		}

		profile := normalizer.NormalizeProfile(parsed.Data)

		letter, err := llmManager.GenerateCoverLetter(c.Request().Context(), profile, &req)
		if err != nil {
			logger.WithField("error", err.Error()).Error("Cover letter generation failed")
			llmErr := utils.NewLLMError(err.Error())
			return c.JSON(llmErr.Code, models.ErrorResponse{
				Error:     "generation_failed",
				Message:   llmErr.Message,
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.WithFields(map[string]interface{}{
			"resume_id":       req.ResumeID,
			"position":        req.Position,
			"processing_time": time.Since(startTime),
		}).Info("Cover letter generated")

		return c.JSON(http.StatusOK, models.CoverLetterResponse{
			Success:        true,
			CoverLetter:    letter,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
