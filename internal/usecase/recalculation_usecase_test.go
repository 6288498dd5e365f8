package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRecalculationUseCase_RecalculatePhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	projects := mocks.NewMockIProjectRepository(ctrl)
	phases := mocks.NewMockIPhaseRepository(ctrl)
	u := NewRecalculationUseCase(projects, phases, nil)
	ctx := context.Background()

	phase := entities.Phase{
		ID:        "phase-1",
		ProjectID: "proj-1",
		BudgetAllocation: entities.BudgetAllocation{
			Configured: true,
			Amounts:    entities.CategoryAmounts{Labour: dec("10000")},
		},
		ActualSpending:  entities.CategoryAmounts{Labour: dec("4000")},
		FinancialStates: entities.FinancialStates{Committed: dec("1000")},
		Status:          entities.PhaseStatusInProgress,
	}

	t.Run("derives states and summary from stored components", func(t *testing.T) {
		phases.EXPECT().GetByID(ctx, "phase-1").Return(phase, nil)

		var gotStates entities.FinancialStates
		phases.EXPECT().UpdateSummary(ctx, "phase-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, states entities.FinancialStates, _ entities.FinancialSummary) error {
				gotStates = states
				return nil
			})

		summary, err := u.RecalculatePhase(ctx, "phase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.ActualTotal.Equal(dec("4000")) {
			t.Fatalf("expected actual total 4000, got %s", summary.ActualTotal)
		}
		if !summary.CommittedTotal.Equal(dec("1000")) {
			t.Fatalf("expected committed total 1000, got %s", summary.CommittedTotal)
		}
		if summary.UtilizationPct == nil || !summary.UtilizationPct.Equal(dec("40")) {
			t.Fatalf("expected utilization 40%%, got %v", summary.UtilizationPct)
		}
		if summary.RiskLevel != entities.RiskOnTrack {
			t.Fatalf("expected on_track, got %s", summary.RiskLevel)
		}
		if !gotStates.Estimated.Equal(dec("5000")) {
			t.Fatalf("estimated must be committed+actual, got %s", gotStates.Estimated)
		}
		if !gotStates.Remaining.Equal(dec("5000")) {
			t.Fatalf("expected remaining 5000, got %s", gotStates.Remaining)
		}
	})

	t.Run("repeated runs produce identical summaries", func(t *testing.T) {
		phases.EXPECT().GetByID(ctx, "phase-1").Return(phase, nil).Times(2)
		phases.EXPECT().UpdateSummary(ctx, "phase-1", gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := u.RecalculatePhase(ctx, "phase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := u.RecalculatePhase(ctx, "phase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		if !bytes.Equal(a, b) {
			t.Fatalf("summaries differ between runs:\n%s\n%s", a, b)
		}
	})

	t.Run("unknown phase", func(t *testing.T) {
		phases.EXPECT().GetByID(ctx, "missing").Return(entities.Phase{}, nil)

		_, err := u.RecalculatePhase(ctx, "missing")
		if !errors.Is(err, ErrPhaseNotFound) {
			t.Fatalf("expected ErrPhaseNotFound, got %v", err)
		}
	})
}

func TestRecalculationUseCase_RecalculateProject(t *testing.T) {
	ctx := context.Background()

	project := entities.Project{
		ID: "proj-1",
		Budget: entities.BudgetAllocation{
			Configured: true,
			Amounts:    entities.CategoryAmounts{Materials: dec("60000"), Labour: dec("40000")},
		},
		CommittedCost:  entities.CategoryAmounts{Materials: dec("20000")},
		ActualSpending: entities.CategoryAmounts{Labour: dec("90000")},
	}
	projectPhases := []entities.Phase{
		{
			ID:        "phase-1",
			ProjectID: "proj-1",
			BudgetAllocation: entities.BudgetAllocation{
				Configured: true,
				Amounts:    entities.CategoryAmounts{Labour: dec("30000")},
			},
			ActualSpending: entities.CategoryAmounts{Labour: dec("27000")},
			Status:         entities.PhaseStatusInProgress,
		},
	}

	t.Run("aggregates totals, risk and unallocated budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockIProjectRepository(ctrl)
		phases := mocks.NewMockIPhaseRepository(ctrl)
		u := NewRecalculationUseCase(projects, phases, nil)

		projects.EXPECT().GetByID(ctx, "proj-1").Return(project, nil)
		phases.EXPECT().ListByProjectID(ctx, "proj-1").Return(projectPhases, nil)
		projects.EXPECT().UpdateSummary(ctx, "proj-1", gomock.Any()).Return(nil)

		summary, err := u.RecalculateProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.ActualTotal.Equal(dec("90000")) {
			t.Fatalf("expected actual total 90000, got %s", summary.ActualTotal)
		}
		// 90% utilization of the 100000 budget: at risk, not yet over.
		if summary.RiskLevel != entities.RiskAtRisk {
			t.Fatalf("expected at_risk, got %s", summary.RiskLevel)
		}
		if summary.UnallocatedBudget == nil || !summary.UnallocatedBudget.Equal(dec("70000")) {
			t.Fatalf("expected unallocated 70000, got %v", summary.UnallocatedBudget)
		}
		// Phase at 90% utilization raises a high-utilization indicator.
		if len(summary.Risks) == 0 {
			t.Fatal("expected phase risk indicators")
		}
		if summary.ForecastAvailable {
			t.Fatal("no forecast provider wired, forecast must be unavailable")
		}
	})

	t.Run("forecast failure degrades without aborting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockIProjectRepository(ctrl)
		phases := mocks.NewMockIPhaseRepository(ctrl)
		forecast := mocks.NewMockIForecastProvider(ctrl)
		u := NewRecalculationUseCase(projects, phases, forecast)

		projects.EXPECT().GetByID(ctx, "proj-1").Return(project, nil)
		phases.EXPECT().ListByProjectID(ctx, "proj-1").Return(nil, nil)
		forecast.EXPECT().ProjectedSpend(ctx, "proj-1").Return(dec("0"), errors.New("model offline"))
		projects.EXPECT().UpdateSummary(ctx, "proj-1", gomock.Any()).Return(nil)

		summary, err := u.RecalculateProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("forecast failure must not abort recalculation: %v", err)
		}
		if summary.ForecastAvailable || summary.ForecastTotal != nil {
			t.Fatal("expected forecast marked unavailable")
		}
	})

	t.Run("forecast success lands in the summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockIProjectRepository(ctrl)
		phases := mocks.NewMockIPhaseRepository(ctrl)
		forecast := mocks.NewMockIForecastProvider(ctrl)
		u := NewRecalculationUseCase(projects, phases, forecast)

		projects.EXPECT().GetByID(ctx, "proj-1").Return(project, nil)
		phases.EXPECT().ListByProjectID(ctx, "proj-1").Return(nil, nil)
		forecast.EXPECT().ProjectedSpend(ctx, "proj-1").Return(dec("115000"), nil)
		projects.EXPECT().UpdateSummary(ctx, "proj-1", gomock.Any()).Return(nil)

		summary, err := u.RecalculateProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summary.ForecastAvailable || summary.ForecastTotal == nil || !summary.ForecastTotal.Equal(dec("115000")) {
			t.Fatalf("expected forecast 115000, got %+v", summary)
		}
	})

	t.Run("unconfigured budget leaves ratios nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockIProjectRepository(ctrl)
		phases := mocks.NewMockIPhaseRepository(ctrl)
		u := NewRecalculationUseCase(projects, phases, nil)

		projects.EXPECT().GetByID(ctx, "proj-2").Return(entities.Project{
			ID:             "proj-2",
			ActualSpending: entities.CategoryAmounts{Labour: dec("5000")},
		}, nil)
		phases.EXPECT().ListByProjectID(ctx, "proj-2").Return(nil, nil)
		projects.EXPECT().UpdateSummary(ctx, "proj-2", gomock.Any()).Return(nil)

		summary, err := u.RecalculateProject(ctx, "proj-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Variance != nil || summary.UtilizationPct != nil || summary.Remaining != nil || summary.UnallocatedBudget != nil {
			t.Fatalf("expected nil ratios without a budget, got %+v", summary)
		}
		if summary.RiskLevel != entities.RiskOnTrack {
			t.Fatalf("expected on_track without a budget, got %s", summary.RiskLevel)
		}
	})
}
