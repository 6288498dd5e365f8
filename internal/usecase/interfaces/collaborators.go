package interfaces

import (
	"context"
	"encoding/json"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IAuditRecorder records state-changing operations. Best-effort: callers log
// a failed Record and move on; the financial transaction never rolls back
// because of it.
type IAuditRecorder interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
}

// INotifier informs downstream channels of approvals/rejections/payments.
// Callers never block on delivery.
type INotifier interface {
	Notify(ctx context.Context, event entities.NotificationEvent) error
}

// IForecastProvider supplies a projected total spend for a project. Optional
// collaborator: failure degrades recalculation to "forecast unavailable".
type IForecastProvider interface {
	ProjectedSpend(ctx context.Context, projectID string) (decimal.Decimal, error)
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago)
// used to settle professional fees.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
