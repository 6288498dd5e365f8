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

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID               string              `dynamodbav:"id"`
	Name             string              `dynamodbav:"name"`
	BudgetConfigured bool                `dynamodbav:"budget_configured"`
	Budget           categoryAmountsItem `dynamodbav:"budget"`
	Capital          *decimalAttr        `dynamodbav:"capital,omitempty"`
	CommittedCost    categoryAmountsItem `dynamodbav:"committed_cost"`
	CommittedTotal   decimalAttr         `dynamodbav:"committed_total"`
	ActualSpending   categoryAmountsItem `dynamodbav:"actual_spending"`
	ActualTotal      decimalAttr         `dynamodbav:"actual_total"`
	SummaryRaw       string              `dynamodbav:"summary_raw,omitempty"`
	CreatedAt        string              `dynamodbav:"created_at"`
	UpdatedAt        string              `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The capital attribute is absent until the first investor allocation lands;
// absence is how "no capital configured" survives the round-trip. The
// committed/actual money maps are mutated only through the spending ledger
// store inside a transaction, never rewritten here.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) UpdateBudget(ctx context.Context, id string, budget entities.BudgetAllocation) (entities.Project, error) {
	amounts, err := attributevalue.Marshal(toAmountsItem(budget.Amounts))
	if err != nil {
		return entities.Project{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #budget = :budget, #configured = :configured, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#budget":     "budget",
			"#configured": "budget_configured",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":budget":     amounts,
			":configured": &types.AttributeValueMemberBOOL{Value: budget.Configured},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) UpdateSummary(ctx context.Context, id string, summary entities.FinancialSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #summary = :summary, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#summary":    "summary_raw",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":summary":    &types.AttributeValueMemberS{Value: string(raw)},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

// StageAdjustCapital stages a signed capital increment. if_not_exists makes
// the first allocation create the attribute, which flips the project from
// "capital unset" to a configured ceiling.
func (r *ProjectDynamoRepository) StageAdjustCapital(sess interfaces.TxSession, id string, delta decimal.Decimal) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET #capital = if_not_exists(#capital, :zero) + :delta, #updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#capital":    "capital",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero":  numAttr(decimal.Zero),
				":delta": numAttr(delta),
				":now":   &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:               p.ID,
		Name:             p.Name,
		BudgetConfigured: p.Budget.Configured,
		Budget:           toAmountsItem(p.Budget.Amounts),
		CommittedCost:    toAmountsItem(p.CommittedCost),
		CommittedTotal:   decimalAttr(p.CommittedCost.Total()),
		ActualSpending:   toAmountsItem(p.ActualSpending),
		ActualTotal:      decimalAttr(p.ActualSpending.Total()),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.Capital.IsSet() {
		capital := decimalAttr(p.Capital.Amount())
		it.Capital = &capital
	}
	if raw, err := json.Marshal(p.Summary); err == nil {
		it.SummaryRaw = string(raw)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Project{
		ID:   it.ID,
		Name: it.Name,
		Budget: entities.BudgetAllocation{
			Configured: it.BudgetConfigured,
			Amounts:    fromAmountsItem(it.Budget),
		},
		CommittedCost:  fromAmountsItem(it.CommittedCost),
		ActualSpending: fromAmountsItem(it.ActualSpending),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.Capital != nil {
		p.Capital = entities.SetCeiling(it.Capital.dec())
	}
	if it.SummaryRaw != "" {
		_ = json.Unmarshal([]byte(it.SummaryRaw), &p.Summary)
	}
	return p
}
