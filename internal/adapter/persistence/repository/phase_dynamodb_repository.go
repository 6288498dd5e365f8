package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultPhasesTableName = "phases"
	phasesProjectIDIndex   = "project_id-index"
)

type phaseItem struct {
	ID                   string              `dynamodbav:"id"`
	ProjectID            string              `dynamodbav:"project_id"`
	Name                 string              `dynamodbav:"name"`
	Sequence             int                 `dynamodbav:"sequence"`
	AllocationConfigured bool                `dynamodbav:"allocation_configured"`
	BudgetAllocation     categoryAmountsItem `dynamodbav:"budget_allocation"`
	ActualSpending       categoryAmountsItem `dynamodbav:"actual_spending"`
	ActualTotal          decimalAttr         `dynamodbav:"actual_total"`
	CommittedCost        decimalAttr         `dynamodbav:"committed_cost"`
	EstimatedCost        decimalAttr         `dynamodbav:"estimated_cost"`
	RemainingBudget      decimalAttr         `dynamodbav:"remaining_budget"`
	CompletionPercentage decimalAttr         `dynamodbav:"completion_percentage"`
	Status               string              `dynamodbav:"status"`
	SummaryRaw           string              `dynamodbav:"summary_raw,omitempty"`
	CreatedAt            string              `dynamodbav:"created_at"`
	UpdatedAt            string              `dynamodbav:"updated_at"`
}

// PhaseDynamoRepository persists Phase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// actual_spending/actual_total and committed_cost are ledger-owned; this
// repository never rewrites them outside of Create. estimated_cost and
// remaining_budget are derived values written back by recalculation.

type PhaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPhaseRepository = (*PhaseDynamoRepository)(nil)

func NewPhaseDynamoRepository(ddb *dynamodb.Client) *PhaseDynamoRepository {
	return &PhaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PHASES_TABLE", defaultPhasesTableName),
	}
}

func (r *PhaseDynamoRepository) Create(ctx context.Context, ph entities.Phase) (entities.Phase, error) {
	av, err := attributevalue.MarshalMap(toPhaseItem(ph))
	if err != nil {
		return entities.Phase{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Phase{}, err
	}
	return ph, nil
}

func (r *PhaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Phase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Phase{}, err
	}
	if len(out.Item) == 0 {
		return entities.Phase{}, nil
	}

	var it phaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Phase{}, err
	}
	return fromPhaseItem(it), nil
}

func (r *PhaseDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Phase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(phasesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	phases := make([]entities.Phase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it phaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		phases = append(phases, fromPhaseItem(it))
	}
	return phases, nil
}

func (r *PhaseDynamoRepository) UpdateAllocation(ctx context.Context, id string, allocation entities.BudgetAllocation) (entities.Phase, error) {
	amounts, err := attributevalue.Marshal(toAmountsItem(allocation.Amounts))
	if err != nil {
		return entities.Phase{}, err
	}

	return r.update(ctx, id,
		"SET #alloc = :alloc, #configured = :configured, #updated_at = :updated_at",
		map[string]string{
			"#alloc":      "budget_allocation",
			"#configured": "allocation_configured",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":alloc":      amounts,
			":configured": &types.AttributeValueMemberBOOL{Value: allocation.Configured},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		})
}

func (r *PhaseDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PhaseStatus, completionPct decimal.Decimal) (entities.Phase, error) {
	return r.update(ctx, id,
		"SET #status = :status, #completion = :completion, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#completion": "completion_percentage",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":completion": numAttr(completionPct),
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		})
}

func (r *PhaseDynamoRepository) UpdateSummary(ctx context.Context, id string, states entities.FinancialStates, summary entities.FinancialSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	_, err = r.update(ctx, id,
		"SET #estimated = :estimated, #remaining = :remaining, #summary = :summary, #updated_at = :updated_at",
		map[string]string{
			"#estimated":  "estimated_cost",
			"#remaining":  "remaining_budget",
			"#summary":    "summary_raw",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":estimated":  numAttr(states.Estimated),
			":remaining":  numAttr(states.Remaining),
			":summary":    &types.AttributeValueMemberS{Value: string(raw)},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		})
	return err
}

func (r *PhaseDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.Phase, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Phase{}, nil
		}
		return entities.Phase{}, err
	}

	var it phaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Phase{}, err
	}
	return fromPhaseItem(it), nil
}

func toPhaseItem(ph entities.Phase) phaseItem {
	it := phaseItem{
		ID:                   ph.ID,
		ProjectID:            ph.ProjectID,
		Name:                 ph.Name,
		Sequence:             ph.Sequence,
		AllocationConfigured: ph.BudgetAllocation.Configured,
		BudgetAllocation:     toAmountsItem(ph.BudgetAllocation.Amounts),
		ActualSpending:       toAmountsItem(ph.ActualSpending),
		ActualTotal:          decimalAttr(ph.ActualSpending.Total()),
		CommittedCost:        decimalAttr(ph.FinancialStates.Committed),
		EstimatedCost:        decimalAttr(ph.FinancialStates.Estimated),
		RemainingBudget:      decimalAttr(ph.FinancialStates.Remaining),
		CompletionPercentage: decimalAttr(ph.CompletionPercentage),
		Status:               string(ph.Status),
		CreatedAt:            ph.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            ph.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if raw, err := json.Marshal(ph.Summary); err == nil {
		it.SummaryRaw = string(raw)
	}
	return it
}

func fromPhaseItem(it phaseItem) entities.Phase {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	ph := entities.Phase{
		ID:        it.ID,
		ProjectID: it.ProjectID,
		Name:      it.Name,
		Sequence:  it.Sequence,
		BudgetAllocation: entities.BudgetAllocation{
			Configured: it.AllocationConfigured,
			Amounts:    fromAmountsItem(it.BudgetAllocation),
		},
		ActualSpending: fromAmountsItem(it.ActualSpending),
		FinancialStates: entities.FinancialStates{
			Committed: it.CommittedCost.dec(),
			Estimated: it.EstimatedCost.dec(),
			Remaining: it.RemainingBudget.dec(),
		},
		CompletionPercentage: it.CompletionPercentage.dec(),
		Status:               entities.PhaseStatus(it.Status),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.SummaryRaw != "" {
		_ = json.Unmarshal([]byte(it.SummaryRaw), &ph.Summary)
	}
	return ph
}
