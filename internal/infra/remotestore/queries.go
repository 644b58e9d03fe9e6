package remotestore

import (
	"context"
	"encoding/json"

	"jobtrack/internal/domain/job"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobQueries is the narrow SQL surface the store depends on; tests substitute
// a fake, production wires the pgx implementation below.
type JobQueries interface {
	InsertJob(ctx context.Context, row InsertRow) (Row, error)
	GetJob(ctx context.Context, id, userID string) (Row, error)
	ListJobs(ctx context.Context, userID string) ([]Row, error)
	UpdateJob(ctx context.Context, id, userID string, row UpdateRow) (Row, error)
	DeleteJob(ctx context.Context, id, userID string) error
}

const jobColumns = `id, user_id, job_id, title, company, location, description, url,
	application_url, how_to_apply, deadline, referral_message, outreach_status,
	notes, status, contacts, created_at, date_applied, updated_at`

const insertJobSQL = `
INSERT INTO jobs (
	user_id, job_id, title, company, location, description, url,
	application_url, how_to_apply, deadline, referral_message, outreach_status,
	notes, status, contacts, date_applied
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	COALESCE($12, 'Have to Find'), $13, COALESCE($14, 'Saved'), $15::jsonb, $16
)
RETURNING ` + jobColumns

const getJobSQL = `
SELECT ` + jobColumns + `
FROM jobs
WHERE id = $1 AND user_id = $2`

const listJobsSQL = `
SELECT ` + jobColumns + `
FROM jobs
WHERE user_id = $1
ORDER BY created_at DESC`

const updateJobSQL = `
UPDATE jobs SET
	job_id           = COALESCE($3, job_id),
	title            = COALESCE($4, title),
	company          = COALESCE($5, company),
	location         = COALESCE($6, location),
	description      = COALESCE($7, description),
	url              = COALESCE($8, url),
	application_url  = COALESCE($9, application_url),
	how_to_apply     = COALESCE($10, how_to_apply),
	deadline         = COALESCE($11, deadline),
	referral_message = COALESCE($12, referral_message),
	outreach_status  = COALESCE($13, outreach_status),
	notes            = COALESCE($14, notes),
	status           = COALESCE($15, status),
	contacts         = COALESCE($16::jsonb, contacts),
	date_applied     = COALESCE($17, date_applied),
	updated_at       = $18
WHERE id = $1 AND user_id = $2
RETURNING ` + jobColumns

const deleteJobSQL = `
DELETE FROM jobs
WHERE id = $1 AND user_id = $2`

type PgxJobQueries struct {
	pool *pgxpool.Pool
}

func NewPgxJobQueries(pool *pgxpool.Pool) *PgxJobQueries {
	return &PgxJobQueries{pool: pool}
}

func (q *PgxJobQueries) InsertJob(ctx context.Context, row InsertRow) (Row, error) {
	contacts, err := marshalContacts(row.Contacts)
	if err != nil {
		return Row{}, err
	}
	r := q.pool.QueryRow(ctx, insertJobSQL,
		row.UserID, row.JobID, row.Title, row.Company, row.Location, row.Description,
		row.URL, row.ApplicationURL, row.HowToApply, row.Deadline, row.ReferralMessage,
		row.OutreachStatus, row.Notes, row.Status, contacts, row.DateApplied,
	)
	return scanJobRow(r)
}

func (q *PgxJobQueries) GetJob(ctx context.Context, id, userID string) (Row, error) {
	return scanJobRow(q.pool.QueryRow(ctx, getJobSQL, id, userID))
}

func (q *PgxJobQueries) ListJobs(ctx context.Context, userID string) ([]Row, error) {
	rows, err := q.pool.Query(ctx, listJobsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		r, serr := scanJobRow(rows)
		if serr != nil {
			return nil, serr
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (q *PgxJobQueries) UpdateJob(ctx context.Context, id, userID string, row UpdateRow) (Row, error) {
	var contacts any
	if row.Contacts != nil {
		raw, err := marshalContacts(*row.Contacts)
		if err != nil {
			return Row{}, err
		}
		contacts = raw
	}
	r := q.pool.QueryRow(ctx, updateJobSQL,
		id, userID,
		row.JobID, row.Title, row.Company, row.Location, row.Description,
		row.URL, row.ApplicationURL, row.HowToApply, row.Deadline, row.ReferralMessage,
		row.OutreachStatus, row.Notes, row.Status, contacts, row.DateApplied, row.UpdatedAt,
	)
	return scanJobRow(r)
}

func (q *PgxJobQueries) DeleteJob(ctx context.Context, id, userID string) error {
	_, err := q.pool.Exec(ctx, deleteJobSQL, id, userID)
	return err
}

func marshalContacts(cs []job.Contact) (string, error) {
	if cs == nil {
		cs = []job.Contact{}
	}
	raw, err := json.Marshal(cs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func scanJobRow(r pgx.Row) (Row, error) {
	var (
		row         Row
		rawContacts []byte
	)
	err := r.Scan(
		&row.ID, &row.UserID, &row.JobID, &row.Title, &row.Company, &row.Location,
		&row.Description, &row.URL, &row.ApplicationURL, &row.HowToApply, &row.Deadline,
		&row.ReferralMessage, &row.OutreachStatus, &row.Notes, &row.Status, &rawContacts,
		&row.CreatedAt, &row.DateApplied, &row.UpdatedAt,
	)
	if err != nil {
		return Row{}, err
	}
	if len(rawContacts) > 0 {
		// A malformed contacts blob reads as null; the converter substitutes
		// an empty list downstream.
		_ = json.Unmarshal(rawContacts, &row.Contacts)
	}
	return row, nil
}
