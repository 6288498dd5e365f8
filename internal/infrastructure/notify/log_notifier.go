package notify

import (
	"context"
	"log"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"
)

// LogNotifier writes notification events to the application log. Stands in
// for a real channel (email, webhook) in local and test environments.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(_ context.Context, event entities.NotificationEvent) error {
	log.Printf("[notify][infrastructure] kind=%s entity=%s/%s message=%q", event.Kind, event.EntityType, event.EntityID, event.Message)
	return nil
}
