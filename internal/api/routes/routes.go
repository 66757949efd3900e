package routes

import (
	"net/http"
	"time"

	"talexu-jobs/internal/api/handlers"
	"talexu-jobs/internal/api/middleware"
	"talexu-jobs/internal/config"
	"talexu-jobs/internal/llm"
	"talexu-jobs/internal/search"
	"talexu-jobs/internal/storage"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, orchestrator *search.Orchestrator, reader *search.Reader, store storage.Store, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Search requests block until the upstream fetch resolves, so the
	// timeout must cover the full scrape window
	e.Use(middleware.TimeoutConfig(cfg.JobSource.Timeout + 10*time.Second))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(store, llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Root banner for quick manual checks
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "talexu-jobs",
			"status":  "operational",
		})
	})

	api := e.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.POST("/search", handlers.SearchHandler(orchestrator))
			jobs.GET("/status", handlers.StatusHandler(reader))
			jobs.GET("/results", handlers.ResultsHandler(reader))
		}

		resume := api.Group("/resume")
		{
			resume.POST("/normalize", handlers.NormalizeResumeHandler())
			resume.PUT("/parsed/:id", handlers.StoreParsedResumeHandler(store))
			resume.GET("/parsed/:id", handlers.GetParsedResumeHandler(store))
		}

		api.POST("/cover-letter/generate", handlers.CoverLetterHandler(llmManager, store))
	}
}
