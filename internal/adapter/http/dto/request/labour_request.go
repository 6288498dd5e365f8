package request

import (
	"construfin/internal/usecase"

	"github.com/shopspring/decimal"
)

type LabourEntryRequest struct {
	WorkerID      string          `json:"worker_id" binding:"required"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" binding:"required"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

type CreateLabourBatchRequest struct {
	ProjectID      string               `json:"project_id" binding:"required"`
	PhaseID        string               `json:"phase_id" binding:"required"`
	SourceReportID string               `json:"source_report_id"`
	Entries        []LabourEntryRequest `json:"entries" binding:"required"`
}

func (r CreateLabourBatchRequest) ToInput() usecase.CreateLabourBatchInput {
	entries := make([]usecase.LabourEntryInput, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, usecase.LabourEntryInput{
			WorkerID:      e.WorkerID,
			RegularHours:  e.RegularHours,
			OvertimeHours: e.OvertimeHours,
			HourlyRate:    e.HourlyRate,
			OvertimeRate:  e.OvertimeRate,
		})
	}
	return usecase.CreateLabourBatchInput{
		ProjectID:      r.ProjectID,
		PhaseID:        r.PhaseID,
		SourceReportID: r.SourceReportID,
		Entries:        entries,
	}
}
