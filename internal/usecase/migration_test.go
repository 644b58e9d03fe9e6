//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra/backend"
	"jobtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records  []job.Posting
	resetErr error
	wasReset bool
}

func (f *fakeSource) Records() []job.Posting { return f.records }
func (f *fakeSource) Reset() error {
	f.wasReset = true
	return f.resetErr
}

// capturingRemote records every Save and fails for configured titles.
type capturingRemote struct {
	owner      string
	saved      []job.Draft
	failTitles map[string]bool
}

func (r *capturingRemote) Save(_ context.Context, d job.Draft) (*job.Posting, error) {
	if r.failTitles[d.Title] {
		return nil, errors.New("insert failed")
	}
	r.saved = append(r.saved, d)
	p := job.NewPosting(d, time.Now())
	return &p, nil
}

func (r *capturingRemote) Get(context.Context, string) (*job.Posting, error) { return nil, nil }
func (r *capturingRemote) GetAll(context.Context) ([]job.Posting, error)     { return nil, nil }
func (r *capturingRemote) Update(context.Context, string, job.Patch) (*job.Posting, error) {
	return nil, nil
}
func (r *capturingRemote) Delete(context.Context, string) (bool, error) { return true, nil }
func (r *capturingRemote) IsAvailable(context.Context) bool             { return r.owner != "" }

func localRecord(title, company string) job.Posting {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return job.NewPosting(job.Draft{
		Title:          title,
		Company:        company,
		Status:         job.StatusSaved,
		OutreachStatus: job.OutreachHaveToFind,
	}, now)
}

func newTestMigrator(source *fakeSource, remote *capturingRemote) *usecase.Migrator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewMigrator(source, func(ownerID string) backend.Store {
		remote.owner = ownerID
		return remote
	}, logger)
}

func TestMigrator_Probes(t *testing.T) {
	t.Run("empty source", func(t *testing.T) {
		m := newTestMigrator(&fakeSource{}, &capturingRemote{})
		assert.False(t, m.HasLocalData())
		assert.Zero(t, m.CountLocalData())
	})

	t.Run("populated source", func(t *testing.T) {
		src := &fakeSource{records: []job.Posting{localRecord("A", "Acme"), localRecord("B", "Bolt")}}
		m := newTestMigrator(src, &capturingRemote{})
		assert.True(t, m.HasLocalData())
		assert.Equal(t, 2, m.CountLocalData())
	})
}

func TestMigrator_Migrate(t *testing.T) {
	ctx := context.Background()

	t.Run("all records succeed", func(t *testing.T) {
		src := &fakeSource{records: []job.Posting{
			localRecord("Engineer", "Acme"),
			localRecord("Designer", "Bolt"),
			localRecord("Manager", "Cog"),
		}}
		remote := &capturingRemote{}
		m := newTestMigrator(src, remote)

		result, err := m.Migrate(ctx, "user-42")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 3, result.Migrated)
		assert.True(t, result.Success)
		assert.Empty(t, result.Errors)
		assert.Equal(t, "user-42", remote.owner)

		// Local data survives a fully successful migration.
		assert.False(t, src.wasReset)
		assert.Len(t, src.records, 3)
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		src := &fakeSource{records: []job.Posting{
			localRecord("Engineer", "Acme"),
			localRecord("Designer", "Bolt"),
			localRecord("Manager", "Cog"),
		}}
		remote := &capturingRemote{failTitles: map[string]bool{"Designer": true}}
		m := newTestMigrator(src, remote)

		result, err := m.Migrate(ctx, "user-42")
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Migrated)
		assert.False(t, result.Success)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Designer")
		assert.Contains(t, result.Errors[0], "Bolt")
	})

	t.Run("payload fields survive, identifiers and timestamps do not", func(t *testing.T) {
		original := localRecord("Engineer", "Acme")
		applied := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
		original.DateApplied = &applied
		original.Notes = "good fit"

		src := &fakeSource{records: []job.Posting{original}}
		remote := &capturingRemote{}
		m := newTestMigrator(src, remote)

		_, err := m.Migrate(ctx, "user-42")
		require.NoError(t, err)
		require.Len(t, remote.saved, 1)

		draft := remote.saved[0]
		assert.Equal(t, "Engineer", draft.Title)
		assert.Equal(t, "Acme", draft.Company)
		assert.Equal(t, "good fit", draft.Notes)
		require.NotNil(t, draft.DateApplied)
		assert.Equal(t, applied, *draft.DateApplied)
	})

	t.Run("empty source migrates trivially", func(t *testing.T) {
		m := newTestMigrator(&fakeSource{}, &capturingRemote{})
		result, err := m.Migrate(ctx, "user-42")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Zero(t, result.Total)
	})
}

func TestMigrator_ClearLocalData(t *testing.T) {
	t.Run("resets the source", func(t *testing.T) {
		src := &fakeSource{records: []job.Posting{localRecord("A", "Acme")}}
		m := newTestMigrator(src, &capturingRemote{})
		m.ClearLocalData()
		assert.True(t, src.wasReset)
	})

	t.Run("reset failure is swallowed", func(t *testing.T) {
		src := &fakeSource{resetErr: errors.New("disk gone")}
		m := newTestMigrator(src, &capturingRemote{})
		assert.NotPanics(t, func() { m.ClearLocalData() })
	})
}
