package ai

import (
	"context"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/pkg/errs"
)

// DisabledExtractor stands in when no model credentials are configured. The
// rest of the service keeps working; only extraction requests fail.
type DisabledExtractor struct{}

func NewDisabledExtractor() *DisabledExtractor {
	return &DisabledExtractor{}
}

func (DisabledExtractor) ExtractDraft(_ context.Context, _ string) (*job.Draft, error) {
	return nil, errs.New("extraction is disabled: no model API key configured")
}
