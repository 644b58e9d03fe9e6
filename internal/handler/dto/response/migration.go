package response

import "jobtrack/internal/usecase"

type MigrationStatusResponse struct {
	HasLocalData bool `json:"hasLocalData"`
	LocalRecords int  `json:"localRecords"`
}

type MigrationResultResponse struct {
	Total    int      `json:"total"`
	Migrated int      `json:"migrated"`
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
}

func FromMigrationResult(r *usecase.MigrationResult) *MigrationResultResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return &MigrationResultResponse{
		Total:    r.Total,
		Migrated: r.Migrated,
		Success:  r.Success,
		Errors:   errs,
	}
}

type MigrationClearResponse struct {
	Cleared bool `json:"cleared"`
}
