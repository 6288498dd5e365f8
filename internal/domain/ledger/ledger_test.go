package ledger

import (
	"testing"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestVariance(t *testing.T) {
	t.Run("unset budget yields nil", func(t *testing.T) {
		if v := Variance(dec("500"), entities.UnsetCeiling()); v != nil {
			t.Fatalf("expected nil variance, got %s", v)
		}
	})

	t.Run("actual above budget is positive", func(t *testing.T) {
		v := Variance(dec("1200"), entities.SetCeiling(dec("1000")))
		if v == nil || !v.Equal(dec("200")) {
			t.Fatalf("expected 200, got %v", v)
		}
	})

	t.Run("actual below budget is negative", func(t *testing.T) {
		v := Variance(dec("800"), entities.SetCeiling(dec("1000")))
		if v == nil || !v.Equal(dec("-200")) {
			t.Fatalf("expected -200, got %v", v)
		}
	})
}

func TestUtilization(t *testing.T) {
	t.Run("unset budget", func(t *testing.T) {
		if u := Utilization(dec("10"), entities.UnsetCeiling()); u != nil {
			t.Fatalf("expected nil, got %s", u)
		}
	})

	t.Run("zero budget", func(t *testing.T) {
		if u := Utilization(dec("10"), entities.SetCeiling(decimal.Zero)); u != nil {
			t.Fatalf("expected nil for zero ceiling, got %s", u)
		}
	})

	t.Run("over 100 is allowed", func(t *testing.T) {
		u := Utilization(dec("1500"), entities.SetCeiling(dec("1000")))
		if u == nil || !u.Equal(dec("150")) {
			t.Fatalf("expected 150, got %v", u)
		}
	})
}

func TestRemaining(t *testing.T) {
	t.Run("can go negative", func(t *testing.T) {
		r := Remaining(entities.SetCeiling(dec("1000")), dec("800"), dec("500"))
		if r == nil || !r.Equal(dec("-300")) {
			t.Fatalf("expected -300, got %v", r)
		}
	})

	t.Run("unset budget", func(t *testing.T) {
		if r := Remaining(entities.UnsetCeiling(), dec("800"), dec("500")); r != nil {
			t.Fatalf("expected nil, got %s", r)
		}
	})
}

func TestRisk(t *testing.T) {
	cases := []struct {
		name string
		util *decimal.Decimal
		want entities.RiskLevel
	}{
		{name: "nil utilization", util: nil, want: entities.RiskOnTrack},
		{name: "exactly 80", util: ptr(dec("80")), want: entities.RiskOnTrack},
		{name: "above 80", util: ptr(dec("80.01")), want: entities.RiskAtRisk},
		{name: "exactly 100", util: ptr(dec("100")), want: entities.RiskAtRisk},
		{name: "above 100", util: ptr(dec("101")), want: entities.RiskOverBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Risk(tc.util); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPhaseRiskIndicators(t *testing.T) {
	budget := entities.BudgetAllocation{
		Configured: true,
		Amounts:    entities.CategoryAmounts{Materials: dec("1000")},
	}

	t.Run("no allocation yields no findings", func(t *testing.T) {
		ph := entities.Phase{ID: "ph-1", ActualSpending: entities.CategoryAmounts{Materials: dec("5000")}}
		if got := PhaseRiskIndicators(ph); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("variance above 15 percent", func(t *testing.T) {
		ph := entities.Phase{
			ID:               "ph-1",
			Status:           entities.PhaseStatusCompleted,
			BudgetAllocation: budget,
			ActualSpending:   entities.CategoryAmounts{Materials: dec("1200")},
		}
		got := PhaseRiskIndicators(ph)
		if len(got) != 1 || got[0].Kind != "variance_exceeded" || got[0].Severity != entities.RiskSeverityMedium {
			t.Fatalf("expected one medium variance finding, got %v", got)
		}
	})

	t.Run("high utilization on non-completed phase", func(t *testing.T) {
		ph := entities.Phase{
			ID:               "ph-2",
			Status:           entities.PhaseStatusInProgress,
			BudgetAllocation: budget,
			ActualSpending:   entities.CategoryAmounts{Materials: dec("900")},
		}
		got := PhaseRiskIndicators(ph)
		if len(got) != 1 || got[0].Kind != "high_utilization" {
			t.Fatalf("expected one utilization finding, got %v", got)
		}
	})

	t.Run("completed phase suppresses utilization finding", func(t *testing.T) {
		ph := entities.Phase{
			ID:               "ph-3",
			Status:           entities.PhaseStatusCompleted,
			BudgetAllocation: budget,
			ActualSpending:   entities.CategoryAmounts{Materials: dec("900")},
		}
		if got := PhaseRiskIndicators(ph); got != nil {
			t.Fatalf("expected no findings, got %v", got)
		}
	})
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
