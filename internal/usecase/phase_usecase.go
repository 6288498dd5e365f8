package usecase

import (
	"context"
	"strings"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePhaseInput struct {
	ProjectID string
	Name      string
	Sequence  int
}

type IPhaseUseCase interface {
	Create(ctx context.Context, in CreatePhaseInput) (entities.Phase, error)
	GetByID(ctx context.Context, id string) (entities.Phase, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Phase, error)
	SetAllocation(ctx context.Context, id string, amounts entities.CategoryAmounts) (entities.Phase, error)
	UpdateStatus(ctx context.Context, id string, status entities.PhaseStatus, completionPct decimal.Decimal) (entities.Phase, error)
}

type PhaseUseCase struct {
	phases   interfaces.IPhaseRepository
	projects interfaces.IProjectRepository
	queue    *RecalcQueue
}

var _ IPhaseUseCase = (*PhaseUseCase)(nil)

func NewPhaseUseCase(phases interfaces.IPhaseRepository, projects interfaces.IProjectRepository, queue *RecalcQueue) *PhaseUseCase {
	return &PhaseUseCase{phases: phases, projects: projects, queue: queue}
}

func (u *PhaseUseCase) Create(ctx context.Context, in CreatePhaseInput) (entities.Phase, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ProjectID == "" || in.Name == "" {
		return entities.Phase{}, ErrInvalidID
	}
	if in.Sequence < 0 {
		return entities.Phase{}, ErrInvalidQuantity
	}

	project, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return entities.Phase{}, err
	}
	if project.ID == "" {
		return entities.Phase{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	ph := entities.Phase{
		ID:        uuid.NewString(),
		ProjectID: in.ProjectID,
		Name:      in.Name,
		Sequence:  in.Sequence,
		Status:    entities.PhaseStatusNotStarted,
		Summary:   entities.FinancialSummary{RiskLevel: entities.RiskOnTrack},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.phases.Create(ctx, ph)
}

func (u *PhaseUseCase) GetByID(ctx context.Context, id string) (entities.Phase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Phase{}, ErrInvalidID
	}
	ph, err := u.phases.GetByID(ctx, id)
	if err != nil {
		return entities.Phase{}, err
	}
	if ph.ID == "" {
		return entities.Phase{}, ErrPhaseNotFound
	}
	return ph, nil
}

func (u *PhaseUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Phase, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidID
	}
	return u.phases.ListByProjectID(ctx, projectID)
}

func (u *PhaseUseCase) SetAllocation(ctx context.Context, id string, amounts entities.CategoryAmounts) (entities.Phase, error) {
	ph, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Phase{}, err
	}

	updated, err := u.phases.UpdateAllocation(ctx, ph.ID, entities.BudgetAllocation{Configured: true, Amounts: amounts})
	if err != nil {
		return entities.Phase{}, err
	}

	if u.queue != nil {
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopePhase, ID: ph.ID})
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: ph.ProjectID})
	}
	return updated, nil
}

func (u *PhaseUseCase) UpdateStatus(ctx context.Context, id string, status entities.PhaseStatus, completionPct decimal.Decimal) (entities.Phase, error) {
	switch status {
	case entities.PhaseStatusNotStarted, entities.PhaseStatusInProgress, entities.PhaseStatusCompleted,
		entities.PhaseStatusOnHold, entities.PhaseStatusCancelled:
	default:
		return entities.Phase{}, ErrInvalidStatusTransition
	}
	if completionPct.IsNegative() || completionPct.GreaterThan(decimal.NewFromInt(100)) {
		return entities.Phase{}, ErrInvalidQuantity
	}

	ph, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Phase{}, err
	}
	return u.phases.UpdateStatus(ctx, ph.ID, status, completionPct)
}
