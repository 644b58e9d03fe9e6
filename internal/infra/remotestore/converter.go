package remotestore

import (
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// The converters below are pure: no I/O, no clock access beyond the now
// argument. Storage is untrusted, so everything read back is revalidated.

// RecordFromRow maps a stored row to an in-memory record. Unknown enum values
// are replaced by their defaults rather than failing, and a null contact list
// becomes an empty ordered list.
func RecordFromRow(r Row) job.Posting {
	contacts := r.Contacts
	if contacts == nil {
		contacts = []job.Contact{}
	}
	for i, c := range contacts {
		contacts[i].Status = job.ReferralStatusOrDefault(c.Status.String())
	}

	return job.Posting{
		ID:              r.ID,
		JobID:           pgconv.StringPtrFromPgtype(r.JobID),
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		URL:             pgconv.StringPtrFromPgtype(r.URL),
		ApplicationURL:  pgconv.StringPtrFromPgtype(r.ApplicationURL),
		HowToApply:      pgconv.StringPtrFromPgtype(r.HowToApply),
		Deadline:        pgconv.DatePtrFromPgtype(r.Deadline),
		ReferralMessage: r.ReferralMessage,
		OutreachStatus:  job.OutreachStatusOrDefault(r.OutreachStatus),
		Notes:           r.Notes,
		Status:          job.StatusOrDefault(r.Status),
		Contacts:        contacts,
		CreatedAt:       pgconv.TimeFromPgtype(r.CreatedAt),
		DateApplied:     pgconv.TimePtrFromPgtype(r.DateApplied),
		UpdatedAt:       pgconv.TimeFromPgtype(r.UpdatedAt),
	}
}

// InsertRowFromDraft maps a creation payload plus the bound owner identity to
// the insert shape. Empty enum fields are passed as NULL so the store applies
// its own defaults instead of this layer guessing them.
func InsertRowFromDraft(d job.Draft, ownerID string) InsertRow {
	return InsertRow{
		UserID:          ownerID,
		JobID:           pgconv.StringPtrToPgtype(d.JobID),
		Title:           d.Title,
		Company:         d.Company,
		Location:        d.Location,
		Description:     d.Description,
		URL:             pgconv.StringPtrToPgtype(d.URL),
		ApplicationURL:  pgconv.StringPtrToPgtype(d.ApplicationURL),
		HowToApply:      pgconv.StringPtrToPgtype(d.HowToApply),
		Deadline:        pgconv.DatePtrToPgtype(d.Deadline),
		ReferralMessage: d.ReferralMessage,
		OutreachStatus:  optionalEnum(d.OutreachStatus.String()),
		Notes:           d.Notes,
		Status:          optionalEnum(d.Status.String()),
		Contacts:        d.Contacts,
		DateApplied:     pgconv.TimePtrToPgtype(d.DateApplied),
	}
}

// UpdateRowFromPatch maps only the fields present in the patch; everything
// else stays invalid (SQL "keep the current value"). The updated_at column is
// unconditionally refreshed to now, whatever else changed.
func UpdateRowFromPatch(p job.Patch, now time.Time) UpdateRow {
	row := UpdateRow{
		JobID:           pgconv.StringPtrToPgtype(p.JobID),
		Title:           pgconv.StringPtrToPgtype(p.Title),
		Company:         pgconv.StringPtrToPgtype(p.Company),
		Location:        pgconv.StringPtrToPgtype(p.Location),
		Description:     pgconv.StringPtrToPgtype(p.Description),
		URL:             pgconv.StringPtrToPgtype(p.URL),
		ApplicationURL:  pgconv.StringPtrToPgtype(p.ApplicationURL),
		HowToApply:      pgconv.StringPtrToPgtype(p.HowToApply),
		Deadline:        pgconv.DatePtrToPgtype(p.Deadline),
		ReferralMessage: pgconv.StringPtrToPgtype(p.ReferralMessage),
		Notes:           pgconv.StringPtrToPgtype(p.Notes),
		Contacts:        p.Contacts,
		DateApplied:     pgconv.TimePtrToPgtype(p.DateApplied),
		UpdatedAt:       pgconv.TimeToPgtype(now),
	}
	if p.OutreachStatus != nil {
		row.OutreachStatus = pgconv.StringToPgtype(p.OutreachStatus.String())
	}
	if p.Status != nil {
		row.Status = pgconv.StringToPgtype(p.Status.String())
	}
	return row
}

func optionalEnum(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(s)
}
