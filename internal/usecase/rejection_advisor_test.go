package usecase

import "testing"

func TestRejectionRetryAdvisor_Assess(t *testing.T) {
	advisor := NewRejectionRetryAdvisor()

	t.Run("price too high is retryable", func(t *testing.T) {
		got := advisor.Assess("price_too_high", "")
		if !got.Retryable {
			t.Fatalf("expected retryable")
		}
		if got.Recommendation == "" {
			t.Fatalf("expected non-empty recommendation")
		}
		if got.Priority != RetryPriorityHigh {
			t.Fatalf("expected high priority, got %s", got.Priority)
		}
	})

	t.Run("business policy is not retryable", func(t *testing.T) {
		got := advisor.Assess("business_policy", "")
		if got.Retryable {
			t.Fatalf("expected not retryable")
		}
	})

	t.Run("subcategory narrows the rule", func(t *testing.T) {
		base := advisor.Assess("price_too_high", "")
		narrowed := advisor.Assess("price_too_high", "negotiable")
		if narrowed.Recommendation == base.Recommendation {
			t.Fatalf("expected subcategory-specific recommendation")
		}
		if !narrowed.Retryable {
			t.Fatalf("expected retryable")
		}
	})

	t.Run("unknown subcategory falls back to reason", func(t *testing.T) {
		got := advisor.Assess("out_of_stock", "whatever")
		if !got.Retryable || got.Priority != RetryPriorityHigh {
			t.Fatalf("expected reason-level rule, got %+v", got)
		}
	})

	t.Run("unknown reason falls back to manual review", func(t *testing.T) {
		got := advisor.Assess("solar_flare", "")
		if !got.Retryable {
			t.Fatalf("default assessment should be retryable")
		}
		if got.Confidence >= 0.5 {
			t.Fatalf("default assessment should carry low confidence, got %v", got.Confidence)
		}
	})
}
