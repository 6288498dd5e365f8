package audit

import (
	"context"
	"log"
	"os"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultAuditTableName = "audit_entries"

type auditItem struct {
	ID         string `dynamodbav:"id"`
	Actor      string `dynamodbav:"actor"`
	Action     string `dynamodbav:"action"`
	EntityType string `dynamodbav:"entity_type"`
	EntityID   string `dynamodbav:"entity_id"`
	Before     string `dynamodbav:"before,omitempty"`
	After      string `dynamodbav:"after,omitempty"`
	RecordedAt string `dynamodbav:"recorded_at"`
}

// DynamoAuditRecorder appends audit entries to a DynamoDB table. Entries are
// written outside the financial transaction: a failed audit write is logged by
// the caller and never rolls anything back.
type DynamoAuditRecorder struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRecorder = (*DynamoAuditRecorder)(nil)

func NewDynamoAuditRecorder(ddb *dynamodb.Client) *DynamoAuditRecorder {
	tableName := os.Getenv("AUDIT_TABLE")
	if tableName == "" {
		tableName = defaultAuditTableName
	}
	return &DynamoAuditRecorder{ddb: ddb, tableName: tableName}
}

func (r *DynamoAuditRecorder) Record(ctx context.Context, entry entities.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(auditItem{
		ID:         entry.ID,
		Actor:      entry.Actor,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Before:     entry.Before,
		After:      entry.After,
		RecordedAt: entry.RecordedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		log.Printf("[audit][infrastructure] put failed action=%s entity=%s/%s err=%v", entry.Action, entry.EntityType, entry.EntityID, err)
		return err
	}
	return nil
}
