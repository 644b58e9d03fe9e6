// Package remotestore persists job postings in the cloud relational store,
// scoped to one authenticated owner. Every query carries the owner predicate;
// there is no code path that can touch another owner's rows.
package remotestore

import (
	"context"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra"
	"jobtrack/internal/pkg/clock"
	"jobtrack/internal/pkg/pgconv"
)

type Store struct {
	queries JobQueries
	clock   clock.Clock
	ownerID string
}

// New binds a store to exactly one owner identity for its whole lifetime.
func New(queries JobQueries, clk clock.Clock, ownerID string) *Store {
	return &Store{queries: queries, clock: clk, ownerID: ownerID}
}

// Save transforms the payload to an insert row, inserts it, and reads back
// the stored row including the server-assigned identifier and timestamps.
func (s *Store) Save(ctx context.Context, draft job.Draft) (*job.Posting, error) {
	draft.Contacts = job.NormalizeContacts(draft.Contacts, s.clock.Now())
	if draft.Status == job.StatusApplied && draft.DateApplied == nil {
		now := s.clock.Now()
		draft.DateApplied = &now
	}

	row, err := s.queries.InsertJob(ctx, InsertRowFromDraft(draft, s.ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert job", err)
	}
	record := RecordFromRow(row)
	return &record, nil
}

// Get returns the record matching both id and the bound owner, or nil when
// zero rows match. "Does not exist" and "owned by someone else" are
// indistinguishable here on purpose.
func (s *Store) Get(ctx context.Context, id string) (*job.Posting, error) {
	row, err := s.queries.GetJob(ctx, id, s.ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get job", err)
	}
	record := RecordFromRow(row)
	return &record, nil
}

// GetAll returns every record for the bound owner, newest first.
func (s *Store) GetAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := s.queries.ListJobs(ctx, s.ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs", err)
	}
	records := make([]job.Posting, len(rows))
	for i, r := range rows {
		records[i] = RecordFromRow(r)
	}
	return records, nil
}

// Update reads the current row first so record-level rules (DateApplied is
// stamped exactly once, contact leads get ContactedAt on first contact) apply
// before the partial update is written back. Returns nil when no row matches.
func (s *Store) Update(ctx context.Context, id string, patch job.Patch) (*job.Posting, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	now := s.clock.Now()
	merged := job.Apply(*existing, patch, now)

	effective := patch
	if patch.DateApplied == nil && merged.DateApplied != nil && existing.DateApplied == nil {
		effective.DateApplied = merged.DateApplied
	}
	if patch.Contacts != nil {
		effective.Contacts = &merged.Contacts
	}

	row, err := s.queries.UpdateJob(ctx, id, s.ownerID, UpdateRowFromPatch(effective, now))
	if err != nil {
		if pgconv.IsNoRows(err) {
			// The row vanished between the read and the write.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to update job", err)
	}
	record := RecordFromRow(row)
	return &record, nil
}

// Delete removes the row matching id and the bound owner. It returns true on
// any non-error response; the contract cannot distinguish "deleted" from
// "nothing matched". Known limitation, kept as-is.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.queries.DeleteJob(ctx, id, s.ownerID); err != nil {
		return false, infra.WrapRepoErr("failed to delete job", err)
	}
	return true, nil
}

// IsAvailable reports whether a non-empty owner identity is bound. This is an
// identity check, not a network probe.
func (s *Store) IsAvailable(_ context.Context) bool {
	return s.ownerID != ""
}
