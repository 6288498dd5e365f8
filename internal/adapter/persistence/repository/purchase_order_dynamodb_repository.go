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
)

const (
	defaultOrdersTableName = "purchase_orders"
	ordersProjectIDIndex   = "project_id-index"
)

type supplierModificationItem struct {
	UnitCost        *decimalAttr `dynamodbav:"unit_cost,omitempty"`
	QuantityOrdered *int64       `dynamodbav:"quantity_ordered,omitempty"`
	Note            string       `dynamodbav:"note,omitempty"`
}

type purchaseOrderItem struct {
	ID                   string                    `dynamodbav:"id"`
	ProjectID            string                    `dynamodbav:"project_id"`
	PhaseID              string                    `dynamodbav:"phase_id,omitempty"`
	SupplierID           string                    `dynamodbav:"supplier_id"`
	Status               string                    `dynamodbav:"status"`
	UnitCost             decimalAttr               `dynamodbav:"unit_cost"`
	QuantityOrdered      int64                     `dynamodbav:"quantity_ordered"`
	TotalCost            decimalAttr               `dynamodbav:"total_cost"`
	SupplierModification *supplierModificationItem `dynamodbav:"supplier_modification,omitempty"`
	ModificationApproved *bool                     `dynamodbav:"modification_approved,omitempty"`
	FinancialStatus      string                    `dynamodbav:"financial_status"`
	RejectionReason      string                    `dynamodbav:"rejection_reason,omitempty"`
	RejectionSubcategory string                    `dynamodbav:"rejection_subcategory,omitempty"`
	IsRetryable          *bool                     `dynamodbav:"is_retryable,omitempty"`
	RetryRecommendation  string                    `dynamodbav:"retry_recommendation,omitempty"`
	OriginalOrderID      string                    `dynamodbav:"original_order_id,omitempty"`
	CreatedAt            string                    `dynamodbav:"created_at"`
	UpdatedAt            string                    `dynamodbav:"updated_at"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type PurchaseOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb *dynamodb.Client) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASE_ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	av, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
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
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.PurchaseOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.PurchaseOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it purchaseOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromPurchaseOrderItem(it))
	}
	return orders, nil
}

func (r *PurchaseOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error) {
	return r.update(ctx, id,
		"SET #status = :status, #updated_at = :updated_at",
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
		})
}

func (r *PurchaseOrderDynamoRepository) UpdateRejection(ctx context.Context, id, reason, subcategory string, retryable bool, recommendation string) (entities.PurchaseOrder, error) {
	return r.update(ctx, id,
		"SET #status = :status, #reason = :reason, #subcategory = :subcategory, "+
			"#retryable = :retryable, #recommendation = :recommendation, #updated_at = :updated_at",
		map[string]string{
			"#status":         "status",
			"#reason":         "rejection_reason",
			"#subcategory":    "rejection_subcategory",
			"#retryable":      "is_retryable",
			"#recommendation": "retry_recommendation",
			"#updated_at":     "updated_at",
		},
		map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.POStatusRejected)},
			":reason":         &types.AttributeValueMemberS{Value: reason},
			":subcategory":    &types.AttributeValueMemberS{Value: subcategory},
			":retryable":      &types.AttributeValueMemberBOOL{Value: retryable},
			":recommendation": &types.AttributeValueMemberS{Value: recommendation},
			":updated_at":     &types.AttributeValueMemberS{Value: nowRFC3339()},
		})
}

// UpdateModification writes or clears the pending supplier modification. A
// nil mod removes the attribute (decline or post-approval cleanup); a non-nil
// approved persists the decision alongside.
func (r *PurchaseOrderDynamoRepository) UpdateModification(ctx context.Context, id string, mod *entities.SupplierModification, approved *bool, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#mod":        "supplier_modification",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: nowRFC3339()},
	}

	if mod != nil {
		modAttr, err := attributevalue.Marshal(toSupplierModificationItem(*mod))
		if err != nil {
			return entities.PurchaseOrder{}, err
		}
		expr += ", #mod = :mod"
		values[":mod"] = modAttr
	}
	if approved != nil {
		expr += ", #approved = :approved"
		names["#approved"] = "modification_approved"
		values[":approved"] = &types.AttributeValueMemberBOOL{Value: *approved}
	}
	if mod == nil {
		expr += " REMOVE #mod"
	}

	return r.update(ctx, id, expr, names, values)
}

// StagePut stages a full rewrite of the order for the approval transaction.
func (r *PurchaseOrderDynamoRepository) StagePut(sess interfaces.TxSession, po entities.PurchaseOrder) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return err
	}

	dyn.add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	return nil
}

func (r *PurchaseOrderDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.PurchaseOrder, error) {
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
			return entities.PurchaseOrder{}, nil
		}
		return entities.PurchaseOrder{}, err
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func toSupplierModificationItem(mod entities.SupplierModification) supplierModificationItem {
	it := supplierModificationItem{
		QuantityOrdered: mod.QuantityOrdered,
		Note:            mod.Note,
	}
	if mod.UnitCost != nil {
		cost := decimalAttr(*mod.UnitCost)
		it.UnitCost = &cost
	}
	return it
}

func fromSupplierModificationItem(it supplierModificationItem) *entities.SupplierModification {
	mod := &entities.SupplierModification{
		QuantityOrdered: it.QuantityOrdered,
		Note:            it.Note,
	}
	if it.UnitCost != nil {
		cost := it.UnitCost.dec()
		mod.UnitCost = &cost
	}
	return mod
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	it := purchaseOrderItem{
		ID:                   po.ID,
		ProjectID:            po.ProjectID,
		PhaseID:              po.PhaseID,
		SupplierID:           po.SupplierID,
		Status:               string(po.Status),
		UnitCost:             decimalAttr(po.UnitCost),
		QuantityOrdered:      po.QuantityOrdered,
		TotalCost:            decimalAttr(po.TotalCost),
		ModificationApproved: po.ModificationApproved,
		FinancialStatus:      string(po.FinancialStatus),
		RejectionReason:      po.RejectionReason,
		RejectionSubcategory: po.RejectionSubcategory,
		IsRetryable:          po.IsRetryable,
		RetryRecommendation:  po.RetryRecommendation,
		OriginalOrderID:      po.OriginalOrderID,
		CreatedAt:            po.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            po.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if po.SupplierModification != nil {
		mod := toSupplierModificationItem(*po.SupplierModification)
		it.SupplierModification = &mod
	}
	return it
}

func fromPurchaseOrderItem(it purchaseOrderItem) entities.PurchaseOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	po := entities.PurchaseOrder{
		ID:                   it.ID,
		ProjectID:            it.ProjectID,
		PhaseID:              it.PhaseID,
		SupplierID:           it.SupplierID,
		Status:               entities.PurchaseOrderStatus(it.Status),
		UnitCost:             it.UnitCost.dec(),
		QuantityOrdered:      it.QuantityOrdered,
		TotalCost:            it.TotalCost.dec(),
		ModificationApproved: it.ModificationApproved,
		FinancialStatus:      entities.FinancialStatus(it.FinancialStatus),
		RejectionReason:      it.RejectionReason,
		RejectionSubcategory: it.RejectionSubcategory,
		IsRetryable:          it.IsRetryable,
		RetryRecommendation:  it.RetryRecommendation,
		OriginalOrderID:      it.OriginalOrderID,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	if it.SupplierModification != nil {
		po.SupplierModification = fromSupplierModificationItem(*it.SupplierModification)
	}
	return po
}
