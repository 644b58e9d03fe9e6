// Package ai turns raw job-posting text into a structured draft via an
// external model. Prompt quality and model behavior are the provider's
// problem; this package only owns the narrow interface and the timeout.
package ai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/pkg/config"
	"jobtrack/internal/pkg/errs"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Extractor is the narrow contract the handler layer consumes.
type Extractor interface {
	ExtractDraft(ctx context.Context, rawText string) (*job.Draft, error)
}

const maxInputLen = 20000

const extractionPrompt = `You are a job-posting data extraction assistant. Analyze the raw text of a
job posting and extract structured data.

Instructions:
1. Ignore navigation menus, footers, "similar jobs" lists, and ads.
2. Output valid JSON only. Do not wrap the output in markdown code blocks.
3. If a piece of information is missing, set the value to null. Never guess.

Output schema:
{
  "title": "Job title",
  "company": "Company name",
  "location": "Location or 'Remote'",
  "description": "Clean summary of responsibilities and requirements",
  "url": "Posting URL if present, else null",
  "application_url": "Direct application link if present, else null",
  "how_to_apply": "Application instructions if present, else null",
  "deadline": "Application deadline as YYYY-MM-DD if present, else null"
}

Raw content:
%s`

type GeminiExtractor struct {
	model   llms.Model
	timeout time.Duration
}

func NewGeminiExtractor(cfg config.AIConfig) (*GeminiExtractor, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errs.New("gemini api key is not configured")
	}
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	return &GeminiExtractor{model: llm, timeout: cfg.Timeout}, nil
}

// extractionPayload is the model's output shape; field names follow the
// prompt schema, not the storage row.
type extractionPayload struct {
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Location       *string `json:"location"`
	Description    *string `json:"description"`
	URL            *string `json:"url"`
	ApplicationURL *string `json:"application_url"`
	HowToApply     *string `json:"how_to_apply"`
	Deadline       *string `json:"deadline"`
}

func (e *GeminiExtractor) ExtractDraft(ctx context.Context, rawText string) (*job.Draft, error) {
	if len(rawText) > maxInputLen {
		rawText = rawText[:maxInputLen]
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := llms.GenerateFromSinglePrompt(ctx, e.model,
		strings.Replace(extractionPrompt, "%s", rawText, 1))
	if err != nil {
		return nil, errs.Wrap(err, "extraction request failed")
	}

	return draftFromModelOutput(resp)
}

// draftFromModelOutput parses the model response, tolerating the markdown
// fencing some models add despite instructions.
func draftFromModelOutput(resp string) (*job.Draft, error) {
	cleaned := strings.TrimSpace(resp)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, errs.Wrap(err, "model returned unparseable output")
	}

	draft := &job.Draft{
		Title:          deref(payload.Title),
		Company:        deref(payload.Company),
		Location:       deref(payload.Location),
		Description:    deref(payload.Description),
		URL:            payload.URL,
		ApplicationURL: payload.ApplicationURL,
		HowToApply:     payload.HowToApply,
		Status:         job.StatusSaved,
		OutreachStatus: job.OutreachHaveToFind,
	}
	if payload.Deadline != nil {
		if d, err := time.Parse("2006-01-02", *payload.Deadline); err == nil {
			draft.Deadline = &d
		}
	}
	return draft, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
