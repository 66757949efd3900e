package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"talexu-jobs/internal/config"
	"talexu-jobs/internal/logging"
	"talexu-jobs/pkg/models"
)

// Manager owns the configured LLM provider and guards access to it
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mutex    sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the provider and runs a non-fatal health check
func (m *Manager) Start() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed, continuing anyway", map[string]interface{}{
			"provider": provider.GetProviderName(),
			"error":    err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
	}

	m.logger.Info("LLM manager started", map[string]interface{}{
		"provider": provider.GetProviderName(),
		"healthy":  m.healthy,
	})

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateCoverLetter delegates to the active provider
func (m *Manager) GenerateCoverLetter(ctx context.Context, profile *models.ResumeProfile, req *models.CoverLetterRequest) (string, error) {
	m.mutex.RLock()
	provider := m.provider
	m.mutex.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("LLM manager not started")
	}

	return provider.GenerateCoverLetter(ctx, profile, req)
}

// IsHealthy reports whether the provider passed its last health check
func (m *Manager) IsHealthy() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.provider != nil && m.healthy
}

// GetProviderName returns the active provider's name, or "none"
func (m *Manager) GetProviderName() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.provider == nil {
		return "none"
	}
	return m.provider.GetProviderName()
}
