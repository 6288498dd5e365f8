package repository

import (
	"context"
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
	defaultFeesTableName     = "professional_fees"
	defaultServicesTableName = "professional_services"
)

type professionalFeeItem struct {
	ID          string      `dynamodbav:"id"`
	ServiceID   string      `dynamodbav:"service_id"`
	Description string      `dynamodbav:"description,omitempty"`
	Amount      decimalAttr `dynamodbav:"amount"`
	Status      string      `dynamodbav:"status"`
	CreatedAt   string      `dynamodbav:"created_at"`
	UpdatedAt   string      `dynamodbav:"updated_at"`
}

type professionalServiceItem struct {
	ID          string      `dynamodbav:"id"`
	ProjectID   string      `dynamodbav:"project_id"`
	Name        string      `dynamodbav:"name"`
	FeesPaid    decimalAttr `dynamodbav:"fees_paid"`
	FeesPending decimalAttr `dynamodbav:"fees_pending"`
	CreatedAt   string      `dynamodbav:"created_at"`
	UpdatedAt   string      `dynamodbav:"updated_at"`
}

// ProfessionalFeeDynamoRepository persists fees and their service counters.
//
// Table requirements:
//   - professional_fees:     PK id (string)
//   - professional_services: PK id (string)
//
// The fees_paid/fees_pending counters on a service only move through staged
// increments, paired in the same transaction as the fee status transition.

type ProfessionalFeeDynamoRepository struct {
	ddb           *dynamodb.Client
	feesTable     string
	servicesTable string
}

var _ interfaces.IProfessionalFeeRepository = (*ProfessionalFeeDynamoRepository)(nil)

func NewProfessionalFeeDynamoRepository(ddb *dynamodb.Client) *ProfessionalFeeDynamoRepository {
	return &ProfessionalFeeDynamoRepository{
		ddb:           ddb,
		feesTable:     getenvDefault("PROFESSIONAL_FEES_TABLE", defaultFeesTableName),
		servicesTable: getenvDefault("PROFESSIONAL_SERVICES_TABLE", defaultServicesTableName),
	}
}

// StagePut stages the initial fee write so it can land in the same
// transaction as the service's fees_pending increment.
func (r *ProfessionalFeeDynamoRepository) StagePut(sess interfaces.TxSession, fee entities.ProfessionalFee) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(toProfessionalFeeItem(fee))
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.feesTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	return nil
}

func (r *ProfessionalFeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProfessionalFee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.feesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProfessionalFee{}, nil
	}

	var it professionalFeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProfessionalFee{}, err
	}
	return fromProfessionalFeeItem(it), nil
}

func (r *ProfessionalFeeDynamoRepository) GetServiceByID(ctx context.Context, id string) (entities.ProfessionalService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProfessionalService{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProfessionalService{}, nil
	}

	var it professionalServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProfessionalService{}, err
	}
	return fromProfessionalServiceItem(it), nil
}

func (r *ProfessionalFeeDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.FeeStatus) (entities.ProfessionalFee, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.feesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProfessionalFee{}, nil
		}
		return entities.ProfessionalFee{}, err
	}

	var it professionalFeeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProfessionalFee{}, err
	}
	return fromProfessionalFeeItem(it), nil
}

func (r *ProfessionalFeeDynamoRepository) StageStatus(sess interfaces.TxSession, feeID string, status entities.FeeStatus) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.feesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: feeID},
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
		},
	})
	return nil
}

// StageServiceCounters increments fees_paid and fees_pending by signed
// deltas. Both counters move in one expression so payment can shift an
// amount between them atomically.
func (r *ProfessionalFeeDynamoRepository) StageServiceCounters(sess interfaces.TxSession, serviceID string, paidDelta, pendingDelta decimal.Decimal) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.servicesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: serviceID},
			},
			UpdateExpression: aws.String(
				"SET #paid = if_not_exists(#paid, :zero) + :paid_delta, " +
					"#pending = if_not_exists(#pending, :zero) + :pending_delta, " +
					"#updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#paid":       "fees_paid",
				"#pending":    "fees_pending",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero":          numAttr(decimal.Zero),
				":paid_delta":    numAttr(paidDelta),
				":pending_delta": numAttr(pendingDelta),
				":now":           &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func toProfessionalFeeItem(fee entities.ProfessionalFee) professionalFeeItem {
	return professionalFeeItem{
		ID:          fee.ID,
		ServiceID:   fee.ServiceID,
		Description: fee.Description,
		Amount:      decimalAttr(fee.Amount),
		Status:      string(fee.Status),
		CreatedAt:   fee.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   fee.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfessionalFeeItem(it professionalFeeItem) entities.ProfessionalFee {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProfessionalFee{
		ID:          it.ID,
		ServiceID:   it.ServiceID,
		Description: it.Description,
		Amount:      it.Amount.dec(),
		Status:      entities.FeeStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func fromProfessionalServiceItem(it professionalServiceItem) entities.ProfessionalService {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProfessionalService{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Name:        it.Name,
		FeesPaid:    it.FeesPaid.dec(),
		FeesPending: it.FeesPending.dec(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
