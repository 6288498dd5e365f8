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

// AllocationReport compares the project budget with the sum of phase
// allocations. The gap is reported, never enforced: over-allocation is a
// soft invariant.
type AllocationReport struct {
	BudgetTotal    *decimal.Decimal `json:"budget_total"`
	AllocatedTotal decimal.Decimal  `json:"allocated_total"`
	Unallocated    *decimal.Decimal `json:"unallocated"`
}

type IProjectUseCase interface {
	Create(ctx context.Context, name string) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	SetBudget(ctx context.Context, id string, amounts entities.CategoryAmounts) (entities.Project, error)
	AllocationSummary(ctx context.Context, id string) (AllocationReport, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	phases   interfaces.IPhaseRepository
	queue    *RecalcQueue
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, phases interfaces.IPhaseRepository, queue *RecalcQueue) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, phases: phases, queue: queue}
}

func (u *ProjectUseCase) Create(ctx context.Context, name string) (entities.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrInvalidID
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Summary:   entities.FinancialSummary{RiskLevel: entities.RiskOnTrack},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.projects.Create(ctx, p)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// SetBudget configures the project budget ceiling. Amounts may be all zero;
// a configured zero budget is distinct from no budget at all.
func (u *ProjectUseCase) SetBudget(ctx context.Context, id string, amounts entities.CategoryAmounts) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	updated, err := u.projects.UpdateBudget(ctx, p.ID, entities.BudgetAllocation{Configured: true, Amounts: amounts})
	if err != nil {
		return entities.Project{}, err
	}

	if u.queue != nil {
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: p.ID})
	}
	return updated, nil
}

func (u *ProjectUseCase) AllocationSummary(ctx context.Context, id string) (AllocationReport, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return AllocationReport{}, err
	}

	phases, err := u.phases.ListByProjectID(ctx, p.ID)
	if err != nil {
		return AllocationReport{}, err
	}

	report := AllocationReport{AllocatedTotal: decimal.Zero}
	for _, ph := range phases {
		if ph.BudgetAllocation.Configured {
			report.AllocatedTotal = report.AllocatedTotal.Add(ph.BudgetAllocation.Amounts.Total())
		}
	}

	if budget := p.Budget.Ceiling(); budget.IsSet() {
		total := budget.Amount()
		unallocated := total.Sub(report.AllocatedTotal)
		report.BudgetTotal = &total
		report.Unallocated = &unallocated
	}
	return report, nil
}
