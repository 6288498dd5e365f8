package usecase

// RejectionRetryAdvisor classifies purchase-order rejection reasons into
// retryable/non-retryable categories with a recommendation for the
// reassignment workflow. Pure lookup, no I/O, so it can run inline inside
// the rejection transaction without risk of partial failure.

type RetryPriority string

const (
	RetryPriorityHigh   RetryPriority = "high"
	RetryPriorityMedium RetryPriority = "medium"
	RetryPriorityLow    RetryPriority = "low"
)

type RetryAssessment struct {
	Retryable      bool          `json:"retryable"`
	Recommendation string        `json:"recommendation"`
	Priority       RetryPriority `json:"priority"`
	Confidence     float64       `json:"confidence"`
}

type advisorKey struct {
	reason      string
	subcategory string
}

var retryRules = map[advisorKey]RetryAssessment{
	{reason: "price_too_high"}: {
		Retryable:      true,
		Recommendation: "seek alternate supplier with better pricing",
		Priority:       RetryPriorityHigh,
		Confidence:     0.9,
	},
	{reason: "price_too_high", subcategory: "negotiable"}: {
		Retryable:      true,
		Recommendation: "re-send with a counter-offer before switching supplier",
		Priority:       RetryPriorityMedium,
		Confidence:     0.75,
	},
	{reason: "out_of_stock"}: {
		Retryable:      true,
		Recommendation: "reassign to a supplier with available inventory",
		Priority:       RetryPriorityHigh,
		Confidence:     0.95,
	},
	{reason: "lead_time_too_long"}: {
		Retryable:      true,
		Recommendation: "reassign to a supplier with shorter delivery window",
		Priority:       RetryPriorityMedium,
		Confidence:     0.85,
	},
	{reason: "quantity_too_large"}: {
		Retryable:      true,
		Recommendation: "split the order across multiple suppliers",
		Priority:       RetryPriorityMedium,
		Confidence:     0.7,
	},
	{reason: "business_policy"}: {
		Retryable:      false,
		Recommendation: "supplier policy prevents fulfilment; review order terms",
		Priority:       RetryPriorityLow,
		Confidence:     0.9,
	},
	{reason: "supplier_closed"}: {
		Retryable:      false,
		Recommendation: "supplier no longer operating; remove from supplier pool",
		Priority:       RetryPriorityLow,
		Confidence:     0.95,
	},
	{reason: "compliance"}: {
		Retryable:      false,
		Recommendation: "resolve compliance requirements before reordering",
		Priority:       RetryPriorityLow,
		Confidence:     0.85,
	},
}

// defaultAssessment covers reasons outside the rule table: treated as
// retryable with low confidence so a human reviews the reassignment.
var defaultAssessment = RetryAssessment{
	Retryable:      true,
	Recommendation: "unclassified rejection; review manually before reassigning",
	Priority:       RetryPriorityLow,
	Confidence:     0.4,
}

type RejectionRetryAdvisor struct{}

func NewRejectionRetryAdvisor() *RejectionRetryAdvisor {
	return &RejectionRetryAdvisor{}
}

// Assess resolves the most specific rule first (reason + subcategory), then
// falls back to the reason alone, then to the default.
func (a *RejectionRetryAdvisor) Assess(reasonCategory, subcategory string) RetryAssessment {
	if subcategory != "" {
		if r, ok := retryRules[advisorKey{reason: reasonCategory, subcategory: subcategory}]; ok {
			return r
		}
	}
	if r, ok := retryRules[advisorKey{reason: reasonCategory}]; ok {
		return r
	}
	return defaultAssessment
}
