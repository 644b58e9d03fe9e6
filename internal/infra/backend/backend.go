// Package backend defines the storage contract shared by the on-device and
// remote job stores, and the selector that picks one per session.
package backend

import (
	"context"

	"jobtrack/internal/domain/job"
)

// Store is the five-operation contract both backends satisfy. Expected
// conditions surface as return values, not errors: Get and Update return
// (nil, nil) when no record matches, Delete reports whether anything was
// removed, and IsAvailable probes whether writes can be expected to stick.
type Store interface {
	Save(ctx context.Context, draft job.Draft) (*job.Posting, error)
	Get(ctx context.Context, id string) (*job.Posting, error)
	GetAll(ctx context.Context) ([]job.Posting, error)
	Update(ctx context.Context, id string, patch job.Patch) (*job.Posting, error)
	Delete(ctx context.Context, id string) (bool, error)
	IsAvailable(ctx context.Context) bool
}
