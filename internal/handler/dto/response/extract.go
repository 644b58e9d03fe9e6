package response

import "jobtrack/internal/domain/job"

// ExtractJobResponse is an editable pre-fill, not a stored record, so it
// carries no identifier or timestamps.
type ExtractJobResponse struct {
	JobID          *string `json:"jobId,omitempty"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	URL            *string `json:"url,omitempty"`
	ApplicationURL *string `json:"applicationUrl,omitempty"`
	HowToApply     *string `json:"howToApply,omitempty"`
	Deadline       *string `json:"deadline,omitempty"`
	Notes          string  `json:"notes"`
}

func FromDraft(d *job.Draft) *ExtractJobResponse {
	var deadline *string
	if d.Deadline != nil {
		s := d.Deadline.Format("2006-01-02")
		deadline = &s
	}
	return &ExtractJobResponse{
		JobID:          d.JobID,
		Title:          d.Title,
		Company:        d.Company,
		Location:       d.Location,
		Description:    d.Description,
		URL:            d.URL,
		ApplicationURL: d.ApplicationURL,
		HowToApply:     d.HowToApply,
		Deadline:       deadline,
		Notes:          d.Notes,
	}
}
