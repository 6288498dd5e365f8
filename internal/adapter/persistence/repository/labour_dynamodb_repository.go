package repository

import (
	"context"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLabourBatchesTableName = "labour_batches"
	defaultLabourEntriesTableName = "labour_entries"
	defaultSiteReportsTableName   = "site_reports"
	entriesBatchIDIndex           = "batch_id-index"
)

type labourBatchItem struct {
	ID             string      `dynamodbav:"id"`
	ProjectID      string      `dynamodbav:"project_id"`
	PhaseID        string      `dynamodbav:"phase_id"`
	SourceReportID string      `dynamodbav:"source_report_id,omitempty"`
	TotalHours     decimalAttr `dynamodbav:"total_hours"`
	TotalCost      decimalAttr `dynamodbav:"total_cost"`
	Status         string      `dynamodbav:"status"`
	CreatedAt      string      `dynamodbav:"created_at"`
	UpdatedAt      string      `dynamodbav:"updated_at"`
}

type labourEntryItem struct {
	ID            string      `dynamodbav:"id"`
	BatchID       string      `dynamodbav:"batch_id"`
	WorkerID      string      `dynamodbav:"worker_id"`
	RegularHours  decimalAttr `dynamodbav:"regular_hours"`
	OvertimeHours decimalAttr `dynamodbav:"overtime_hours"`
	HourlyRate    decimalAttr `dynamodbav:"hourly_rate"`
	OvertimeRate  decimalAttr `dynamodbav:"overtime_rate"`
	TotalHours    decimalAttr `dynamodbav:"total_hours"`
	TotalCost     decimalAttr `dynamodbav:"total_cost"`
	Status        string      `dynamodbav:"status"`
}

// LabourDynamoRepository persists labour batches and entries in DynamoDB.
//
// Table requirements:
//   - labour_batches: PK id (string)
//   - labour_entries: PK id (string), GSI batch_id-index (PK: batch_id)
//   - site_reports:   PK id (string), converted flag set on batch approval
//
// CreateBatch writes the batch and every entry in one TransactWriteItems
// call: a partial batch is never visible.

type LabourDynamoRepository struct {
	ddb          *dynamodb.Client
	batchesTable string
	entriesTable string
	reportsTable string
}

var _ interfaces.ILabourRepository = (*LabourDynamoRepository)(nil)

func NewLabourDynamoRepository(ddb *dynamodb.Client) *LabourDynamoRepository {
	return &LabourDynamoRepository{
		ddb:          ddb,
		batchesTable: getenvDefault("LABOUR_BATCHES_TABLE", defaultLabourBatchesTableName),
		entriesTable: getenvDefault("LABOUR_ENTRIES_TABLE", defaultLabourEntriesTableName),
		reportsTable: getenvDefault("SITE_REPORTS_TABLE", defaultSiteReportsTableName),
	}
}

func (r *LabourDynamoRepository) CreateBatch(ctx context.Context, batch entities.LabourBatch, entries []entities.LabourEntry) (entities.LabourBatch, error) {
	batchAV, err := attributevalue.MarshalMap(toLabourBatchItem(batch))
	if err != nil {
		return entities.LabourBatch{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(entries)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.batchesTable),
			Item:                batchAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, e := range entries {
		entryAV, err := attributevalue.MarshalMap(toLabourEntryItem(e))
		if err != nil {
			return entities.LabourBatch{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.entriesTable),
				Item:      entryAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.LabourBatch{}, err
	}
	return batch, nil
}

func (r *LabourDynamoRepository) GetBatchByID(ctx context.Context, id string) (entities.LabourBatch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.batchesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LabourBatch{}, err
	}
	if len(out.Item) == 0 {
		return entities.LabourBatch{}, nil
	}

	var it labourBatchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LabourBatch{}, err
	}
	return fromLabourBatchItem(it), nil
}

func (r *LabourDynamoRepository) ListEntriesByBatchID(ctx context.Context, batchID string) ([]entities.LabourEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.entriesTable),
		IndexName:              aws.String(entriesBatchIDIndex),
		KeyConditionExpression: aws.String("batch_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: batchID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.LabourEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it labourEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLabourEntryItem(it))
	}
	return entries, nil
}

func (r *LabourDynamoRepository) StageBatchStatus(sess interfaces.TxSession, batchID string, status entities.LabourStatus) error {
	// Guards against double-approval under concurrency: the transaction
	// fails unless the batch is still pending.
	return r.stageStatus(sess, r.batchesTable, batchID, status, string(entities.LabourStatusPending))
}

func (r *LabourDynamoRepository) StageEntryStatus(sess interfaces.TxSession, entryID string, status entities.LabourStatus) error {
	return r.stageStatus(sess, r.entriesTable, entryID, status, "")
}

func (r *LabourDynamoRepository) StageMarkReportConverted(sess interfaces.TxSession, reportID string) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.reportsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: reportID},
			},
			UpdateExpression:    aws.String("SET #converted = :converted, #updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#converted":  "converted",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":converted": &types.AttributeValueMemberBOOL{Value: true},
				":now":       &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func (r *LabourDynamoRepository) stageStatus(sess interfaces.TxSession, table, id string, status entities.LabourStatus, requireStatus string) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	update := &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":now":    &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	}
	if requireStatus != "" {
		update.ConditionExpression = aws.String("attribute_exists(#id) AND #status = :required")
		update.ExpressionAttributeValues[":required"] = &types.AttributeValueMemberS{Value: requireStatus}
	}

	dyn.add(types.TransactWriteItem{Update: update})
	return nil
}

func toLabourBatchItem(b entities.LabourBatch) labourBatchItem {
	return labourBatchItem{
		ID:             b.ID,
		ProjectID:      b.ProjectID,
		PhaseID:        b.PhaseID,
		SourceReportID: b.SourceReportID,
		TotalHours:     decimalAttr(b.TotalHours),
		TotalCost:      decimalAttr(b.TotalCost),
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLabourBatchItem(it labourBatchItem) entities.LabourBatch {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.LabourBatch{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		PhaseID:        it.PhaseID,
		SourceReportID: it.SourceReportID,
		TotalHours:     it.TotalHours.dec(),
		TotalCost:      it.TotalCost.dec(),
		Status:         entities.LabourStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func toLabourEntryItem(e entities.LabourEntry) labourEntryItem {
	return labourEntryItem{
		ID:            e.ID,
		BatchID:       e.BatchID,
		WorkerID:      e.WorkerID,
		RegularHours:  decimalAttr(e.RegularHours),
		OvertimeHours: decimalAttr(e.OvertimeHours),
		HourlyRate:    decimalAttr(e.HourlyRate),
		OvertimeRate:  decimalAttr(e.OvertimeRate),
		TotalHours:    decimalAttr(e.TotalHours),
		TotalCost:     decimalAttr(e.TotalCost),
		Status:        string(e.Status),
	}
}

func fromLabourEntryItem(it labourEntryItem) entities.LabourEntry {
	return entities.LabourEntry{
		ID:            it.ID,
		BatchID:       it.BatchID,
		WorkerID:      it.WorkerID,
		RegularHours:  it.RegularHours.dec(),
		OvertimeHours: it.OvertimeHours.dec(),
		HourlyRate:    it.HourlyRate.dec(),
		OvertimeRate:  it.OvertimeRate.dec(),
		TotalHours:    it.TotalHours.dec(),
		TotalCost:     it.TotalCost.dec(),
		Status:        entities.LabourStatus(it.Status),
	}
}
