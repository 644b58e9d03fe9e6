package request

import (
	"time"

	"jobtrack/internal/domain/job"
)

const dateLayout = "2006-01-02"

type ContactPayload struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" binding:"required"`
	ContactInfo string     `json:"contactInfo"`
	ContactedAt *time.Time `json:"contactedAt"`
	Status      string     `json:"status"`
}

func (p ContactPayload) toDomain() job.Contact {
	return job.Contact{
		ID:          p.ID,
		Name:        p.Name,
		ContactInfo: p.ContactInfo,
		ContactedAt: p.ContactedAt,
		Status:      job.ReferralStatusOrDefault(p.Status),
	}
}

type CreateJobRequest struct {
	JobID           *string          `json:"jobId"`
	Title           string           `json:"title" binding:"required"`
	Company         string           `json:"company" binding:"required"`
	Location        string           `json:"location"`
	Description     string           `json:"description"`
	URL             *string          `json:"url" binding:"omitempty,url"`
	ApplicationURL  *string          `json:"applicationUrl" binding:"omitempty,url"`
	HowToApply      *string          `json:"howToApply"`
	Deadline        *string          `json:"deadline"`
	ReferralMessage string           `json:"referralMessage"`
	OutreachStatus  string           `json:"outreachStatus"`
	Notes           string           `json:"notes"`
	Status          string           `json:"status"`
	Contacts        []ContactPayload `json:"contacts"`
}

func (r *CreateJobRequest) ToDraft() (job.Draft, error) {
	deadline, err := parseDate(r.Deadline)
	if err != nil {
		return job.Draft{}, err
	}

	contacts := make([]job.Contact, len(r.Contacts))
	for i, c := range r.Contacts {
		contacts[i] = c.toDomain()
	}

	return job.Draft{
		JobID:           r.JobID,
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		URL:             r.URL,
		ApplicationURL:  r.ApplicationURL,
		HowToApply:      r.HowToApply,
		Deadline:        deadline,
		ReferralMessage: r.ReferralMessage,
		OutreachStatus:  job.OutreachStatusOrDefault(r.OutreachStatus),
		Notes:           r.Notes,
		Status:          job.StatusOrDefault(r.Status),
		Contacts:        contacts,
	}, nil
}

type UpdateJobRequest struct {
	JobID           *string           `json:"jobId"`
	Title           *string           `json:"title"`
	Company         *string           `json:"company"`
	Location        *string           `json:"location"`
	Description     *string           `json:"description"`
	URL             *string           `json:"url" binding:"omitempty,url"`
	ApplicationURL  *string           `json:"applicationUrl" binding:"omitempty,url"`
	HowToApply      *string           `json:"howToApply"`
	Deadline        *string           `json:"deadline"`
	ReferralMessage *string           `json:"referralMessage"`
	OutreachStatus  *string           `json:"outreachStatus"`
	Notes           *string           `json:"notes"`
	Status          *string           `json:"status"`
	Contacts        *[]ContactPayload `json:"contacts"`
}

func (r *UpdateJobRequest) ToPatch() (job.Patch, error) {
	deadline, err := parseDate(r.Deadline)
	if err != nil {
		return job.Patch{}, err
	}

	p := job.Patch{
		JobID:           r.JobID,
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		URL:             r.URL,
		ApplicationURL:  r.ApplicationURL,
		HowToApply:      r.HowToApply,
		Deadline:        deadline,
		ReferralMessage: r.ReferralMessage,
		Notes:           r.Notes,
	}
	if r.OutreachStatus != nil {
		st := job.OutreachStatusOrDefault(*r.OutreachStatus)
		p.OutreachStatus = &st
	}
	if r.Status != nil {
		st := job.StatusOrDefault(*r.Status)
		p.Status = &st
	}
	if r.Contacts != nil {
		contacts := make([]job.Contact, len(*r.Contacts))
		for i, c := range *r.Contacts {
			contacts[i] = c.toDomain()
		}
		p.Contacts = &contacts
	}
	return p, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
