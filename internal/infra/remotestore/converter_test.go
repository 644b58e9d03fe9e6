//go:build unit

package remotestore_test

import (
	"testing"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/infra/remotestore"
	"jobtrack/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullDraft() job.Draft {
	deadline := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	applied := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	contacted := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	return job.Draft{
		JobID:           strPtr("REQ-1042"),
		Title:           "Software Engineer",
		Company:         "Acme",
		Location:        "Remote",
		Description:     "Build the thing",
		URL:             strPtr("https://jobs.acme.test/1042"),
		ApplicationURL:  strPtr("https://apply.acme.test/1042"),
		HowToApply:      strPtr("Apply via portal"),
		Deadline:        &deadline,
		ReferralMessage: "Hi, would you refer me?",
		OutreachStatus:  job.OutreachReachedOut,
		Notes:           "Looks promising",
		Status:          job.StatusApplied,
		Contacts: []job.Contact{
			{ID: "c1", Name: "Dana", ContactInfo: "dana@acme.test", ContactedAt: &contacted, Status: job.ReferralContacted},
			{ID: "c2", Name: "Lee", ContactInfo: "lee@acme.test", Status: job.ReferralNotContacted},
		},
		DateApplied: &applied,
	}
}

// asStoredRow simulates what the store hands back after an insert: the same
// columns plus a generated identifier and timestamps.
func asStoredRow(ir remotestore.InsertRow, id string, created, updated time.Time) remotestore.Row {
	status := ir.Status.String
	if !ir.Status.Valid {
		status = "Saved"
	}
	outreach := ir.OutreachStatus.String
	if !ir.OutreachStatus.Valid {
		outreach = "Have to Find"
	}
	return remotestore.Row{
		ID:              id,
		UserID:          ir.UserID,
		JobID:           ir.JobID,
		Title:           ir.Title,
		Company:         ir.Company,
		Location:        ir.Location,
		Description:     ir.Description,
		URL:             ir.URL,
		ApplicationURL:  ir.ApplicationURL,
		HowToApply:      ir.HowToApply,
		Deadline:        ir.Deadline,
		ReferralMessage: ir.ReferralMessage,
		OutreachStatus:  outreach,
		Notes:           ir.Notes,
		Status:          status,
		Contacts:        ir.Contacts,
		CreatedAt:       pgconv.TimeToPgtype(created),
		DateApplied:     ir.DateApplied,
		UpdatedAt:       pgconv.TimeToPgtype(updated),
	}
}

func TestRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)

	draft := fullDraft()
	ir := remotestore.InsertRowFromDraft(draft, "user-42")
	assert.Equal(t, "user-42", ir.UserID)

	record := remotestore.RecordFromRow(asStoredRow(ir, "generated-id", created, created))

	assert.Equal(t, "generated-id", record.ID)
	assert.Equal(t, created, record.CreatedAt)
	assert.Equal(t, created, record.UpdatedAt)

	// Every payload field must survive the trip exactly.
	got := job.Draft{
		JobID:           record.JobID,
		Title:           record.Title,
		Company:         record.Company,
		Location:        record.Location,
		Description:     record.Description,
		URL:             record.URL,
		ApplicationURL:  record.ApplicationURL,
		HowToApply:      record.HowToApply,
		Deadline:        record.Deadline,
		ReferralMessage: record.ReferralMessage,
		OutreachStatus:  record.OutreachStatus,
		Notes:           record.Notes,
		Status:          record.Status,
		Contacts:        record.Contacts,
		DateApplied:     record.DateApplied,
	}
	if diff := cmp.Diff(draft, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordFromRow(t *testing.T) {
	now := time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)

	baseRow := func() remotestore.Row {
		return remotestore.Row{
			ID:        "row-1",
			UserID:    "user-42",
			Title:     "Engineer",
			Company:   "Acme",
			Status:    "Saved",
			OutreachStatus: "Have to Find",
			CreatedAt: pgconv.TimeToPgtype(now),
			UpdatedAt: pgconv.TimeToPgtype(now),
		}
	}

	t.Run("invalid status falls back to Saved", func(t *testing.T) {
		row := baseRow()
		row.Status = "BogusValue"
		record := remotestore.RecordFromRow(row)
		assert.Equal(t, job.StatusSaved, record.Status)
	})

	t.Run("invalid outreach status falls back to Have to Find", func(t *testing.T) {
		row := baseRow()
		row.OutreachStatus = "???"
		record := remotestore.RecordFromRow(row)
		assert.Equal(t, job.OutreachHaveToFind, record.OutreachStatus)
	})

	t.Run("null contacts become an empty list", func(t *testing.T) {
		record := remotestore.RecordFromRow(baseRow())
		require.NotNil(t, record.Contacts)
		assert.Empty(t, record.Contacts)
	})

	t.Run("invalid contact status falls back to default", func(t *testing.T) {
		row := baseRow()
		row.Contacts = []job.Contact{{ID: "c1", Name: "Dana", Status: "garbage"}}
		record := remotestore.RecordFromRow(row)
		require.Len(t, record.Contacts, 1)
		assert.Equal(t, job.ReferralNotContacted, record.Contacts[0].Status)
	})

	t.Run("null timestamps map to nil pointers", func(t *testing.T) {
		record := remotestore.RecordFromRow(baseRow())
		assert.Nil(t, record.DateApplied)
		assert.Nil(t, record.Deadline)
		assert.Nil(t, record.JobID)
		assert.Nil(t, record.URL)
	})
}

func TestInsertRowFromDraft(t *testing.T) {
	t.Run("empty enums are passed as NULL for store defaults", func(t *testing.T) {
		ir := remotestore.InsertRowFromDraft(job.Draft{Title: "Engineer", Company: "Acme"}, "user-1")
		assert.False(t, ir.Status.Valid)
		assert.False(t, ir.OutreachStatus.Valid)
	})

	t.Run("absent optional fields are NULL, not defaulted", func(t *testing.T) {
		ir := remotestore.InsertRowFromDraft(job.Draft{Title: "Engineer", Company: "Acme"}, "user-1")
		assert.False(t, ir.JobID.Valid)
		assert.False(t, ir.URL.Valid)
		assert.False(t, ir.Deadline.Valid)
		assert.False(t, ir.DateApplied.Valid)
	})
}

func TestUpdateRowFromPatch(t *testing.T) {
	now := time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)

	t.Run("absent fields stay absent", func(t *testing.T) {
		ur := remotestore.UpdateRowFromPatch(job.Patch{}, now)
		assert.False(t, ur.Title.Valid)
		assert.False(t, ur.Status.Valid)
		assert.False(t, ur.DateApplied.Valid)
		assert.Nil(t, ur.Contacts)
	})

	t.Run("updated at is always set", func(t *testing.T) {
		ur := remotestore.UpdateRowFromPatch(job.Patch{}, now)
		require.True(t, ur.UpdatedAt.Valid)
		assert.Equal(t, now, ur.UpdatedAt.Time)
	})

	t.Run("present fields are mapped", func(t *testing.T) {
		title := "Staff Engineer"
		status := job.StatusInterviewing
		ur := remotestore.UpdateRowFromPatch(job.Patch{Title: &title, Status: &status}, now)

		assert.Equal(t, pgtype.Text{String: "Staff Engineer", Valid: true}, ur.Title)
		assert.Equal(t, pgtype.Text{String: "Interviewing", Valid: true}, ur.Status)
	})
}
