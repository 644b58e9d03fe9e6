package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra/backend"

	"github.com/jinzhu/copier"
)

// LocalSource is the raw view of the device-local store the migration routine
// reads from: the stored collection as-is, plus a way to drop it.
type LocalSource interface {
	Records() []job.Posting
	Reset() error
}

// MigrationResult reports a one-shot transfer. Success is true iff every
// record made it across; failures are collected per record, never aborting
// the batch.
type MigrationResult struct {
	Total    int      `json:"total"`
	Migrated int      `json:"migrated"`
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
}

// Migrator moves every device-local record into the remote store for one
// owner. It never deletes local data itself; clearing is a separate, explicit
// call so the caller decides when the originals may go.
type Migrator struct {
	source    LocalSource
	newRemote backend.Factory
	logger    *slog.Logger
}

func NewMigrator(source LocalSource, newRemote backend.Factory, logger *slog.Logger) *Migrator {
	return &Migrator{source: source, newRemote: newRemote, logger: logger}
}

// HasLocalData reports whether anything is waiting to be migrated. Read
// failures read as "no data".
func (m *Migrator) HasLocalData() bool {
	return len(m.source.Records()) > 0
}

// CountLocalData returns the number of local records; zero on read failure.
func (m *Migrator) CountLocalData() int {
	return len(m.source.Records())
}

// Migrate copies every local record into the remote store bound to ownerID.
// Identifier and created/updated timestamps are stripped so the remote store
// assigns fresh ones. One failing record is recorded and skipped; the rest of
// the batch continues.
func (m *Migrator) Migrate(ctx context.Context, ownerID string) (*MigrationResult, error) {
	records := m.source.Records()
	remote := m.newRemote(ownerID)

	result := &MigrationResult{
		Total:  len(records),
		Errors: []string{},
	}

	for _, record := range records {
		var draft job.Draft
		if err := copier.Copy(&draft, &record); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to prepare %q at %s: %v", record.Title, record.Company, err))
			continue
		}

		if _, err := remote.Save(ctx, draft); err != nil {
			m.logger.Warn("record migration failed",
				"title", record.Title, "company", record.Company, "error", err.Error())
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to migrate %q at %s: %v", record.Title, record.Company, err))
			continue
		}
		result.Migrated++
	}

	result.Success = result.Migrated == result.Total
	return result, nil
}

// ClearLocalData drops the local blob. Best effort: it only runs after the
// caller has judged the migration complete (or chosen to discard), so a
// failure here is logged and swallowed.
func (m *Migrator) ClearLocalData() {
	if err := m.source.Reset(); err != nil {
		m.logger.Warn("failed to clear local data", "error", err.Error())
	}
}
