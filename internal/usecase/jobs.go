package usecase

import (
	"context"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra/backend"
)

// JobService routes each call through the backend selector: an anonymous
// session works against the device-local store, a signed-in session against
// the remote store bound to that owner.
type JobService struct {
	selector *backend.Selector
}

func NewJobService(selector *backend.Selector) *JobService {
	return &JobService{selector: selector}
}

func (s *JobService) Save(ctx context.Context, ownerID string, draft job.Draft) (*job.Posting, error) {
	return s.selector.Select(ownerID).Save(ctx, draft)
}

func (s *JobService) Get(ctx context.Context, ownerID, id string) (*job.Posting, error) {
	return s.selector.Select(ownerID).Get(ctx, id)
}

func (s *JobService) GetAll(ctx context.Context, ownerID string) ([]job.Posting, error) {
	return s.selector.Select(ownerID).GetAll(ctx)
}

func (s *JobService) Update(ctx context.Context, ownerID, id string, patch job.Patch) (*job.Posting, error) {
	return s.selector.Select(ownerID).Update(ctx, id, patch)
}

func (s *JobService) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return s.selector.Select(ownerID).Delete(ctx, id)
}

func (s *JobService) IsAvailable(ctx context.Context, ownerID string) bool {
	return s.selector.Select(ownerID).IsAvailable(ctx)
}
