package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"talexu-jobs/internal/config"
	"talexu-jobs/internal/logging"
	"talexu-jobs/pkg/models"
)

// ClaudeProvider implements the provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// GenerateCoverLetter writes a cover letter for the target position from the
// applicant's normalized resume profile
func (cp *ClaudeProvider) GenerateCoverLetter(ctx context.Context, profile *models.ResumeProfile, req *models.CoverLetterRequest) (string, error) {
	startTime := time.Now()

	cp.logger.WithFields(map[string]interface{}{
		"position": req.Position,
		"company":  req.CompanyName,
		"provider": "claude",
	}).Info("Starting cover letter generation")

	prompt := cp.buildCoverLetterPrompt(profile, req)

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	letter, err := extractResponseText(response)
	if err != nil {
		return "", err
	}

	cp.logger.WithFields(map[string]interface{}{
		"position":        req.Position,
		"company":         req.CompanyName,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	}).Info("Cover letter generation completed")

	return letter, nil
}

// buildCoverLetterPrompt assembles the generation prompt from the resume
// profile and target position
func (cp *ClaudeProvider) buildCoverLetterPrompt(profile *models.ResumeProfile, req *models.CoverLetterRequest) string {
	var sb strings.Builder

	sb.WriteString("You are a professional cover letter writer. Write a concise, compelling cover letter for the position below on behalf of the applicant.\n\n")

	fmt.Fprintf(&sb, "POSITION: %s\nCOMPANY: %s\n\nJOB DESCRIPTION:\n%s\n\n", req.Position, req.CompanyName, req.JobDescription)

	sb.WriteString("APPLICANT:\n")
	if name := strings.TrimSpace(profile.Contact.FirstName + " " + profile.Contact.LastName); name != "" {
		fmt.Fprintf(&sb, "Name: %s\n", name)
	}
	if profile.Contact.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", profile.Contact.Email)
	}

	if len(profile.WorkExperience) > 0 {
		sb.WriteString("\nWORK EXPERIENCE:\n")
		for _, exp := range profile.WorkExperience {
			fmt.Fprintf(&sb, "- %s at %s (%s - %s)\n", exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate)
			for _, r := range exp.Responsibilities {
				fmt.Fprintf(&sb, "  * %s\n", r)
			}
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEDUCATION:\n")
		for _, edu := range profile.Education {
			fmt.Fprintf(&sb, "- %s, %s (%s)\n", edu.Degree, edu.School, edu.FieldOfStudy)
		}
	}

	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "\nSKILLS: %s\n", strings.Join(profile.Skills, ", "))
	}

	sb.WriteString(`
IMPORTANT RULES:
1. Return ONLY the cover letter text, no additional commentary
2. Three to four paragraphs, under 400 words
3. Reference the applicant's most relevant experience for this position
4. Do not invent experience or qualifications not present above
5. Professional but warm tone, no generic filler phrases`)

	return sb.String()
}

// extractResponseText pulls the text content out of a Claude response and
// strips any markdown fencing
func extractResponseText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var text string
	for _, content := range response.Content {
		textContent := content.AsText()
		text = textContent.Text
		break
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	return text, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
