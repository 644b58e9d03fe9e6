package remotestore

import (
	"jobtrack/internal/domain/job"

	"github.com/jackc/pgx/v5/pgtype"
)

// Row is the relational representation of a posting: snake_case columns, an
// explicit owner column, and enumerations stored as unconstrained text that
// must be revalidated on read.
type Row struct {
	ID              string
	UserID          string
	JobID           pgtype.Text
	Title           string
	Company         string
	Location        string
	Description     string
	URL             pgtype.Text
	ApplicationURL  pgtype.Text
	HowToApply      pgtype.Text
	Deadline        pgtype.Date
	ReferralMessage string
	OutreachStatus  string
	Notes           string
	Status          string
	Contacts        []job.Contact
	CreatedAt       pgtype.Timestamptz
	DateApplied     pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// InsertRow is the shape used for creation. Identifier and created/updated
// timestamps are server-assigned and therefore absent. Invalid pgtype fields
// become SQL NULLs, letting the store apply its own defaults.
type InsertRow struct {
	UserID          string
	JobID           pgtype.Text
	Title           string
	Company         string
	Location        string
	Description     string
	URL             pgtype.Text
	ApplicationURL  pgtype.Text
	HowToApply      pgtype.Text
	Deadline        pgtype.Date
	ReferralMessage string
	OutreachStatus  pgtype.Text
	Notes           string
	Status          pgtype.Text
	Contacts        []job.Contact
	DateApplied     pgtype.Timestamptz
}

// UpdateRow carries only the fields present in a partial update; an invalid
// pgtype field means "leave the column untouched". UpdatedAt is always set.
type UpdateRow struct {
	JobID           pgtype.Text
	Title           pgtype.Text
	Company         pgtype.Text
	Location        pgtype.Text
	Description     pgtype.Text
	URL             pgtype.Text
	ApplicationURL  pgtype.Text
	HowToApply      pgtype.Text
	Deadline        pgtype.Date
	ReferralMessage pgtype.Text
	OutreachStatus  pgtype.Text
	Notes           pgtype.Text
	Status          pgtype.Text
	Contacts        *[]job.Contact
	DateApplied     pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}
