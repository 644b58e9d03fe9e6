//go:build unit

package remotestore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra"
	"jobtrack/internal/infra/remotestore"
	"jobtrack/internal/pkg/clock"
	"jobtrack/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueries satisfies remotestore.JobQueries with function fields, in place
// of generated SQL code.
type fakeQueries struct {
	insertJob func(ctx context.Context, row remotestore.InsertRow) (remotestore.Row, error)
	getJob    func(ctx context.Context, id, userID string) (remotestore.Row, error)
	listJobs  func(ctx context.Context, userID string) ([]remotestore.Row, error)
	updateJob func(ctx context.Context, id, userID string, row remotestore.UpdateRow) (remotestore.Row, error)
	deleteJob func(ctx context.Context, id, userID string) error
}

func (f *fakeQueries) InsertJob(ctx context.Context, row remotestore.InsertRow) (remotestore.Row, error) {
	return f.insertJob(ctx, row)
}

func (f *fakeQueries) GetJob(ctx context.Context, id, userID string) (remotestore.Row, error) {
	return f.getJob(ctx, id, userID)
}

func (f *fakeQueries) ListJobs(ctx context.Context, userID string) ([]remotestore.Row, error) {
	return f.listJobs(ctx, userID)
}

func (f *fakeQueries) UpdateJob(ctx context.Context, id, userID string, row remotestore.UpdateRow) (remotestore.Row, error) {
	return f.updateJob(ctx, id, userID, row)
}

func (f *fakeQueries) DeleteJob(ctx context.Context, id, userID string) error {
	return f.deleteJob(ctx, id, userID)
}

var testNow = time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)

func storedRow(id, userID string) remotestore.Row {
	return remotestore.Row{
		ID:             id,
		UserID:         userID,
		Title:          "Engineer",
		Company:        "Acme",
		Status:         "Saved",
		OutreachStatus: "Have to Find",
		CreatedAt:      pgconv.TimeToPgtype(testNow),
		UpdatedAt:      pgconv.TimeToPgtype(testNow),
	}
}

func TestRemoteStore_Save(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(testNow)

	t.Run("inserts with the bound owner and returns the stored record", func(t *testing.T) {
		var captured remotestore.InsertRow
		q := &fakeQueries{
			insertJob: func(_ context.Context, row remotestore.InsertRow) (remotestore.Row, error) {
				captured = row
				return storedRow("job-1", row.UserID), nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		record, err := store.Save(ctx, job.Draft{Title: "Engineer", Company: "Acme"})
		require.NoError(t, err)
		require.NotNil(t, record)

		assert.Equal(t, "user-42", captured.UserID)
		assert.Equal(t, "job-1", record.ID)
		assert.Equal(t, testNow, record.CreatedAt)
	})

	t.Run("store failure surfaces as an explicit error", func(t *testing.T) {
		q := &fakeQueries{
			insertJob: func(context.Context, remotestore.InsertRow) (remotestore.Row, error) {
				return remotestore.Row{}, errors.New("connection refused")
			},
		}
		store := remotestore.New(q, clk, "user-42")

		record, err := store.Save(ctx, job.Draft{Title: "Engineer"})
		require.Error(t, err)
		assert.Nil(t, record)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("applied draft gets DateApplied stamped before insert", func(t *testing.T) {
		var captured remotestore.InsertRow
		q := &fakeQueries{
			insertJob: func(_ context.Context, row remotestore.InsertRow) (remotestore.Row, error) {
				captured = row
				return storedRow("job-1", row.UserID), nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		_, err := store.Save(ctx, job.Draft{Title: "Engineer", Status: job.StatusApplied})
		require.NoError(t, err)
		require.True(t, captured.DateApplied.Valid)
		assert.Equal(t, testNow, captured.DateApplied.Time)
	})
}

func TestRemoteStore_Get(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(testNow)

	t.Run("zero rows means nil, not an error", func(t *testing.T) {
		q := &fakeQueries{
			getJob: func(context.Context, string, string) (remotestore.Row, error) {
				return remotestore.Row{}, pgx.ErrNoRows
			},
		}
		store := remotestore.New(q, clk, "user-1")

		record, err := store.Get(ctx, "nonexistent-id")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("queries are filtered by the bound owner", func(t *testing.T) {
		var capturedOwner string
		q := &fakeQueries{
			getJob: func(_ context.Context, id, userID string) (remotestore.Row, error) {
				capturedOwner = userID
				return storedRow(id, userID), nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		record, err := store.Get(ctx, "job-1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "user-42", capturedOwner)
	})
}

func TestRemoteStore_GetAll(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(testNow)

	q := &fakeQueries{
		listJobs: func(_ context.Context, userID string) ([]remotestore.Row, error) {
			return []remotestore.Row{storedRow("b", userID), storedRow("a", userID)}, nil
		},
	}
	store := remotestore.New(q, clk, "user-42")

	records, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID)
}

func TestRemoteStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("no matching row returns nil", func(t *testing.T) {
		clk := clock.NewMockClock(testNow)
		q := &fakeQueries{
			getJob: func(context.Context, string, string) (remotestore.Row, error) {
				return remotestore.Row{}, pgx.ErrNoRows
			},
		}
		store := remotestore.New(q, clk, "user-1")

		record, err := store.Update(ctx, "missing", job.Patch{})
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("first transition to Applied writes DateApplied", func(t *testing.T) {
		clk := clock.NewMockClock(testNow)
		var captured remotestore.UpdateRow
		q := &fakeQueries{
			getJob: func(_ context.Context, id, userID string) (remotestore.Row, error) {
				return storedRow(id, userID), nil
			},
			updateJob: func(_ context.Context, id, userID string, row remotestore.UpdateRow) (remotestore.Row, error) {
				captured = row
				updated := storedRow(id, userID)
				updated.Status = "Applied"
				updated.DateApplied = row.DateApplied
				updated.UpdatedAt = row.UpdatedAt
				return updated, nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		applied := job.StatusApplied
		record, err := store.Update(ctx, "job-1", job.Patch{Status: &applied})
		require.NoError(t, err)
		require.NotNil(t, record)

		require.True(t, captured.DateApplied.Valid)
		assert.Equal(t, testNow, captured.DateApplied.Time)
		require.NotNil(t, record.DateApplied)
	})

	t.Run("already applied record keeps its DateApplied", func(t *testing.T) {
		clk := clock.NewMockClock(testNow.Add(time.Hour))
		earlier := testNow
		var captured remotestore.UpdateRow
		q := &fakeQueries{
			getJob: func(_ context.Context, id, userID string) (remotestore.Row, error) {
				row := storedRow(id, userID)
				row.Status = "Applied"
				row.DateApplied = pgconv.TimeToPgtype(earlier)
				return row, nil
			},
			updateJob: func(_ context.Context, id, userID string, row remotestore.UpdateRow) (remotestore.Row, error) {
				captured = row
				return storedRow(id, userID), nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		applied := job.StatusApplied
		_, err := store.Update(ctx, "job-1", job.Patch{Status: &applied})
		require.NoError(t, err)

		// DateApplied must not be part of the written update.
		assert.False(t, captured.DateApplied.Valid)
	})

	t.Run("updated at is always written", func(t *testing.T) {
		clk := clock.NewMockClock(testNow.Add(time.Hour))
		var captured remotestore.UpdateRow
		q := &fakeQueries{
			getJob: func(_ context.Context, id, userID string) (remotestore.Row, error) {
				return storedRow(id, userID), nil
			},
			updateJob: func(_ context.Context, id, userID string, row remotestore.UpdateRow) (remotestore.Row, error) {
				captured = row
				return storedRow(id, userID), nil
			},
		}
		store := remotestore.New(q, clk, "user-42")

		notes := "x"
		_, err := store.Update(ctx, "job-1", job.Patch{Notes: &notes})
		require.NoError(t, err)
		require.True(t, captured.UpdatedAt.Valid)
		assert.Equal(t, testNow.Add(time.Hour), captured.UpdatedAt.Time)
	})
}

func TestRemoteStore_Delete(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(testNow)

	t.Run("non-error response always reports true", func(t *testing.T) {
		q := &fakeQueries{
			deleteJob: func(context.Context, string, string) error { return nil },
		}
		store := remotestore.New(q, clk, "user-42")

		removed, err := store.Delete(ctx, "whatever")
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		q := &fakeQueries{
			deleteJob: func(context.Context, string, string) error { return errors.New("boom") },
		}
		store := remotestore.New(q, clk, "user-42")

		removed, err := store.Delete(ctx, "whatever")
		require.Error(t, err)
		assert.False(t, removed)
	})
}

func TestRemoteStore_IsAvailable(t *testing.T) {
	clk := clock.NewMockClock(testNow)
	q := &fakeQueries{}

	assert.True(t, remotestore.New(q, clk, "user-42").IsAvailable(context.Background()))
	assert.False(t, remotestore.New(q, clk, "").IsAvailable(context.Background()))
}
