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
	"github.com/shopspring/decimal"
)

const (
	defaultInvestorsTableName   = "investors"
	defaultAllocationsTableName = "investor_allocations"
	allocationsInvestorIDIndex  = "investor_id-index"
	allocationsProjectIDIndex   = "project_id-index"
)

type investorItem struct {
	ID            string      `dynamodbav:"id"`
	Name          string      `dynamodbav:"name"`
	TotalInvested decimalAttr `dynamodbav:"total_invested"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

type investorAllocationItem struct {
	ID             string       `dynamodbav:"id"`
	InvestorID     string       `dynamodbav:"investor_id"`
	ProjectID      string       `dynamodbav:"project_id"`
	Amount         decimalAttr  `dynamodbav:"amount"`
	LoanPercentage *decimalAttr `dynamodbav:"loan_percentage,omitempty"`
	AllocatedAt    string       `dynamodbav:"allocated_at"`
	UpdatedAt      string       `dynamodbav:"updated_at"`
}

// InvestorDynamoRepository persists investors and their project allocations.
//
// Table requirements:
//   - investors:            PK id (string)
//   - investor_allocations: PK id (string),
//     GSI investor_id-index (PK: investor_id),
//     GSI project_id-index  (PK: project_id)
//
// Allocation writes are stage-only: an allocation row never lands without
// its matching capital adjustment on the project.

type InvestorDynamoRepository struct {
	ddb              *dynamodb.Client
	investorsTable   string
	allocationsTable string
}

var _ interfaces.IInvestorRepository = (*InvestorDynamoRepository)(nil)

func NewInvestorDynamoRepository(ddb *dynamodb.Client) *InvestorDynamoRepository {
	return &InvestorDynamoRepository{
		ddb:              ddb,
		investorsTable:   getenvDefault("INVESTORS_TABLE", defaultInvestorsTableName),
		allocationsTable: getenvDefault("INVESTOR_ALLOCATIONS_TABLE", defaultAllocationsTableName),
	}
}

func (r *InvestorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Investor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.investorsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Investor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Investor{}, nil
	}

	var it investorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Investor{}, err
	}
	return fromInvestorItem(it), nil
}

func (r *InvestorDynamoRepository) GetAllocationByID(ctx context.Context, id string) (entities.InvestorAllocation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.allocationsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvestorAllocation{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvestorAllocation{}, nil
	}

	var it investorAllocationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvestorAllocation{}, err
	}
	return fromInvestorAllocationItem(it), nil
}

func (r *InvestorDynamoRepository) ListAllocationsByInvestorID(ctx context.Context, investorID string) ([]entities.InvestorAllocation, error) {
	return r.listAllocations(ctx, allocationsInvestorIDIndex, "investor_id = :key", investorID)
}

func (r *InvestorDynamoRepository) ListAllocationsByProjectID(ctx context.Context, projectID string) ([]entities.InvestorAllocation, error) {
	return r.listAllocations(ctx, allocationsProjectIDIndex, "project_id = :key", projectID)
}

func (r *InvestorDynamoRepository) listAllocations(ctx context.Context, index, keyCond, key string) ([]entities.InvestorAllocation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.allocationsTable),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, err
	}

	allocations := make([]entities.InvestorAllocation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it investorAllocationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		allocations = append(allocations, fromInvestorAllocationItem(it))
	}
	return allocations, nil
}

func (r *InvestorDynamoRepository) StagePutAllocation(sess interfaces.TxSession, alloc entities.InvestorAllocation) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toInvestorAllocationItem(alloc))
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.allocationsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	return nil
}

func (r *InvestorDynamoRepository) StageAllocationAmount(sess interfaces.TxSession, allocationID string, amount decimal.Decimal) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.allocationsTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: allocationID},
			},
			UpdateExpression:    aws.String("SET #amount = :amount, #updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#amount":     "amount",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amount": numAttr(amount),
				":now":    &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func fromInvestorItem(it investorItem) entities.Investor {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Investor{
		ID:            it.ID,
		Name:          it.Name,
		TotalInvested: it.TotalInvested.dec(),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func toInvestorAllocationItem(alloc entities.InvestorAllocation) investorAllocationItem {
	it := investorAllocationItem{
		ID:          alloc.ID,
		InvestorID:  alloc.InvestorID,
		ProjectID:   alloc.ProjectID,
		Amount:      decimalAttr(alloc.Amount),
		AllocatedAt: alloc.AllocatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   alloc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if alloc.LoanPercentage != nil {
		pct := decimalAttr(*alloc.LoanPercentage)
		it.LoanPercentage = &pct
	}
	return it
}

func fromInvestorAllocationItem(it investorAllocationItem) entities.InvestorAllocation {
	allocatedAt, _ := time.Parse(time.RFC3339Nano, it.AllocatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	alloc := entities.InvestorAllocation{
		ID:          it.ID,
		InvestorID:  it.InvestorID,
		ProjectID:   it.ProjectID,
		Amount:      it.Amount.dec(),
		AllocatedAt: allocatedAt,
		UpdatedAt:   updatedAt,
	}
	if it.LoanPercentage != nil {
		pct := it.LoanPercentage.dec()
		alloc.LoanPercentage = &pct
	}
	return alloc
}
