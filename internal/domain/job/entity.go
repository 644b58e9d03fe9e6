package job

import (
	"time"

	"jobtrack/internal/pkg/patch"

	"github.com/google/uuid"
)

// Posting is one tracked application. It is a plain value shared by both
// storage backends; identifier and timestamps are assigned by the backend
// that persists it, never by the caller.
type Posting struct {
	ID              string         `json:"id"`
	JobID           *string        `json:"jobId,omitempty"`
	Title           string         `json:"title"`
	Company         string         `json:"company"`
	Location        string         `json:"location"`
	Description     string         `json:"description"`
	URL             *string        `json:"url,omitempty"`
	ApplicationURL  *string        `json:"applicationUrl,omitempty"`
	HowToApply      *string        `json:"howToApply,omitempty"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	ReferralMessage string         `json:"referralMessage"`
	OutreachStatus  OutreachStatus `json:"outreachStatus"`
	Notes           string         `json:"notes"`
	Status          Status         `json:"status"`
	Contacts        []Contact      `json:"contacts"`
	CreatedAt       time.Time      `json:"createdAt"`
	DateApplied     *time.Time     `json:"dateApplied,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Contact is a referral lead owned by exactly one Posting. It has no
// lifecycle of its own outside its parent.
type Contact struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ContactInfo string         `json:"contactInfo"`
	ContactedAt *time.Time     `json:"contactedAt,omitempty"`
	Status      ReferralStatus `json:"status"`
}

// Draft is a creation payload: a Posting without identifier or created/updated
// timestamps. DateApplied is carried because a record may arrive already applied
// (e.g. during migration between backends).
type Draft struct {
	JobID           *string        `json:"jobId,omitempty"`
	Title           string         `json:"title"`
	Company         string         `json:"company"`
	Location        string         `json:"location"`
	Description     string         `json:"description"`
	URL             *string        `json:"url,omitempty"`
	ApplicationURL  *string        `json:"applicationUrl,omitempty"`
	HowToApply      *string        `json:"howToApply,omitempty"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	ReferralMessage string         `json:"referralMessage"`
	OutreachStatus  OutreachStatus `json:"outreachStatus"`
	Notes           string         `json:"notes"`
	Status          Status         `json:"status"`
	Contacts        []Contact      `json:"contacts"`
	DateApplied     *time.Time     `json:"dateApplied,omitempty"`
}

// Patch is a partial update. A nil field means "leave unchanged"; it is never
// defaulted downstream.
type Patch struct {
	JobID           *string         `json:"jobId,omitempty"`
	Title           *string         `json:"title,omitempty"`
	Company         *string         `json:"company,omitempty"`
	Location        *string         `json:"location,omitempty"`
	Description     *string         `json:"description,omitempty"`
	URL             *string         `json:"url,omitempty"`
	ApplicationURL  *string         `json:"applicationUrl,omitempty"`
	HowToApply      *string         `json:"howToApply,omitempty"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
	ReferralMessage *string         `json:"referralMessage,omitempty"`
	OutreachStatus  *OutreachStatus `json:"outreachStatus,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	Status          *Status         `json:"status,omitempty"`
	Contacts        *[]Contact      `json:"contacts,omitempty"`
	DateApplied     *time.Time      `json:"dateApplied,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.JobID == nil && p.Title == nil && p.Company == nil && p.Location == nil &&
		p.Description == nil && p.URL == nil && p.ApplicationURL == nil && p.HowToApply == nil &&
		p.Deadline == nil && p.ReferralMessage == nil && p.OutreachStatus == nil &&
		p.Notes == nil && p.Status == nil && p.Contacts == nil && p.DateApplied == nil
}

// NewPosting materializes a Draft into a full record with a fresh identifier
// and now as both timestamps. An already-Applied draft without an explicit
// DateApplied is stamped with now so the set-once invariant holds from birth.
func NewPosting(d Draft, now time.Time) Posting {
	p := Posting{
		ID:              uuid.New().String(),
		JobID:           d.JobID,
		Title:           d.Title,
		Company:         d.Company,
		Location:        d.Location,
		Description:     d.Description,
		URL:             d.URL,
		ApplicationURL:  d.ApplicationURL,
		HowToApply:      d.HowToApply,
		Deadline:        d.Deadline,
		ReferralMessage: d.ReferralMessage,
		OutreachStatus:  d.OutreachStatus,
		Notes:           d.Notes,
		Status:          d.Status,
		Contacts:        NormalizeContacts(d.Contacts, now),
		CreatedAt:       now,
		DateApplied:     d.DateApplied,
		UpdatedAt:       now,
	}
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	if p.OutreachStatus == "" {
		p.OutreachStatus = DefaultOutreachStatus
	}
	if p.Status == StatusApplied && p.DateApplied == nil {
		p.DateApplied = &now
	}
	return p
}

// Apply merges a Patch into an existing record. Identifier and CreatedAt are
// preserved unconditionally, UpdatedAt is refreshed to now, and DateApplied is
// stamped exactly once on the first transition into Applied.
func Apply(existing Posting, pt Patch, now time.Time) Posting {
	merged := existing
	merged.JobID = patch.CoalescePtr(pt.JobID, existing.JobID)
	merged.Title = patch.Coalesce(pt.Title, existing.Title)
	merged.Company = patch.Coalesce(pt.Company, existing.Company)
	merged.Location = patch.Coalesce(pt.Location, existing.Location)
	merged.Description = patch.Coalesce(pt.Description, existing.Description)
	merged.URL = patch.CoalescePtr(pt.URL, existing.URL)
	merged.ApplicationURL = patch.CoalescePtr(pt.ApplicationURL, existing.ApplicationURL)
	merged.HowToApply = patch.CoalescePtr(pt.HowToApply, existing.HowToApply)
	merged.Deadline = patch.CoalescePtr(pt.Deadline, existing.Deadline)
	merged.ReferralMessage = patch.Coalesce(pt.ReferralMessage, existing.ReferralMessage)
	merged.OutreachStatus = patch.Coalesce(pt.OutreachStatus, existing.OutreachStatus)
	merged.Notes = patch.Coalesce(pt.Notes, existing.Notes)
	merged.Status = patch.Coalesce(pt.Status, existing.Status)
	if pt.Contacts != nil {
		merged.Contacts = NormalizeContacts(*pt.Contacts, now)
	}
	merged.DateApplied = patch.CoalescePtr(pt.DateApplied, existing.DateApplied)

	if merged.Status == StatusApplied && existing.DateApplied == nil && pt.DateApplied == nil {
		merged.DateApplied = &now
	}

	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = now
	return merged
}

// NormalizeContacts assigns missing contact identifiers, applies the default
// referral status, and stamps ContactedAt the first time a lead is marked
// Contacted. Insertion order is preserved; nil input becomes an empty list.
func NormalizeContacts(cs []Contact, now time.Time) []Contact {
	out := make([]Contact, len(cs))
	for i, c := range cs {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if c.Status == "" {
			c.Status = DefaultReferralStatus
		}
		if c.Status == ReferralContacted && c.ContactedAt == nil {
			c.ContactedAt = &now
		}
		out[i] = c
	}
	return out
}

// RemoveContact deletes a lead by identifier. Removing an unknown id is a
// no-op, not an error.
func RemoveContact(cs []Contact, id string) []Contact {
	out := make([]Contact, 0, len(cs))
	for _, c := range cs {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
