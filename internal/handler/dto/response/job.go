package response

import (
	"time"

	"jobtrack/internal/domain/job"
)

type ContactResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ContactInfo string     `json:"contactInfo"`
	ContactedAt *time.Time `json:"contactedAt,omitempty"`
	Status      string     `json:"status"`
}

type JobResponse struct {
	ID              string            `json:"id"`
	JobID           *string           `json:"jobId,omitempty"`
	Title           string            `json:"title"`
	Company         string            `json:"company"`
	Location        string            `json:"location"`
	Description     string            `json:"description"`
	URL             *string           `json:"url,omitempty"`
	ApplicationURL  *string           `json:"applicationUrl,omitempty"`
	HowToApply      *string           `json:"howToApply,omitempty"`
	Deadline        *string           `json:"deadline,omitempty"`
	ReferralMessage string            `json:"referralMessage"`
	OutreachStatus  string            `json:"outreachStatus"`
	Notes           string            `json:"notes"`
	Status          string            `json:"status"`
	Contacts        []ContactResponse `json:"contacts"`
	CreatedAt       time.Time         `json:"createdAt"`
	DateApplied     *time.Time        `json:"dateApplied,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func FromPosting(p *job.Posting) *JobResponse {
	contacts := make([]ContactResponse, len(p.Contacts))
	for i, c := range p.Contacts {
		contacts[i] = ContactResponse{
			ID:          c.ID,
			Name:        c.Name,
			ContactInfo: c.ContactInfo,
			ContactedAt: c.ContactedAt,
			Status:      c.Status.String(),
		}
	}

	var deadline *string
	if p.Deadline != nil {
		d := p.Deadline.Format("2006-01-02")
		deadline = &d
	}

	return &JobResponse{
		ID:              p.ID,
		JobID:           p.JobID,
		Title:           p.Title,
		Company:         p.Company,
		Location:        p.Location,
		Description:     p.Description,
		URL:             p.URL,
		ApplicationURL:  p.ApplicationURL,
		HowToApply:      p.HowToApply,
		Deadline:        deadline,
		ReferralMessage: p.ReferralMessage,
		OutreachStatus:  p.OutreachStatus.String(),
		Notes:           p.Notes,
		Status:          p.Status.String(),
		Contacts:        contacts,
		CreatedAt:       p.CreatedAt,
		DateApplied:     p.DateApplied,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromPostings(ps []job.Posting) []*JobResponse {
	out := make([]*JobResponse, len(ps))
	for i := range ps {
		out[i] = FromPosting(&ps[i])
	}
	return out
}

type DeleteJobResponse struct {
	Deleted bool `json:"deleted"`
}
