package llm

import (
	"context"

	"talexu-jobs/pkg/models"
)

// Provider defines the interface for text-generation providers
type Provider interface {
	// GenerateCoverLetter writes a cover letter from a normalized resume
	// profile and the target position details
	GenerateCoverLetter(ctx context.Context, profile *models.ResumeProfile, req *models.CoverLetterRequest) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
