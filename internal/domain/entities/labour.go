package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LabourStatus string

const (
	LabourStatusPending  LabourStatus = "pending"
	LabourStatusApproved LabourStatus = "approved"
	LabourStatusPaid     LabourStatus = "paid"
)

// LabourEntry is one worker's hours inside a batch. TotalCost splits regular
// and overtime pay; the batch total is the sum of its entry totals.
type LabourEntry struct {
	ID            string          `json:"id"`
	BatchID       string          `json:"batch_id"`
	WorkerID      string          `json:"worker_id"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        LabourStatus    `json:"status"`
}

// LabourBatch aggregates entries from a daily site report. Approving a batch
// is the trigger that commits its total cost into the phase and project
// spending ledgers, inside one transaction, and marks the source report
// converted.
type LabourBatch struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	PhaseID        string          `json:"phase_id"`
	SourceReportID string          `json:"source_report_id,omitempty"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Status         LabourStatus    `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
