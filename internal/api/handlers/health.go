package handlers

import (
	"net/http"
	"time"

	"talexu-jobs/internal/llm"
	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/storage"
	"talexu-jobs/pkg/models"
	"talexu-jobs/pkg/utils"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service can take traffic. The store
// must be reachable; the LLM provider is reported but not required.
func ReadinessHandler(store storage.Store, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		logger.Debug("Readiness check requested", map[string]interface{}{"request_id": requestID})

		checks := map[string]string{
			"api":     "ok",
			"storage": "ok",
			"llm":     "ok",
		}
		status := "ready"
		code := http.StatusOK

		if err := store.Ping(c.Request().Context()); err != nil {
			checks["storage"] = "unreachable"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		}

		if llmManager == nil || !llmManager.IsHealthy() {
			checks["llm"] = "unavailable"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
