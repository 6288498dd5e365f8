package response

import (
	"time"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LabourBatchResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	PhaseID        string          `json:"phase_id"`
	SourceReportID string          `json:"source_report_id,omitempty"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromLabourBatch(b entities.LabourBatch) LabourBatchResponse {
	return LabourBatchResponse{
		ID:             b.ID,
		ProjectID:      b.ProjectID,
		PhaseID:        b.PhaseID,
		SourceReportID: b.SourceReportID,
		TotalHours:     b.TotalHours,
		TotalCost:      b.TotalCost,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
