package repository

import (
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// SpendingLedgerStore stages increments against the denormalized spending
// aggregates on project and phase items. Every adjustment touches exactly two
// numeric attributes, the per-category field and the running total, in the
// same update expression, so the two can never drift apart. All writes are
// staged on a session and land only when the coordinator commits.
type SpendingLedgerStore struct {
	projectsTable string
	phasesTable   string
}

var _ interfaces.ISpendingLedgerStore = (*SpendingLedgerStore)(nil)

func NewSpendingLedgerStore() *SpendingLedgerStore {
	return &SpendingLedgerStore{
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		phasesTable:   getenvDefault("PHASES_TABLE", defaultPhasesTableName),
	}
}

func (s *SpendingLedgerStore) AdjustPhaseSpending(sess interfaces.TxSession, phaseID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error {
	return s.stageMapAdjust(sess, s.phasesTable, phaseID, "actual_spending", "actual_total", category, amount, dir)
}

func (s *SpendingLedgerStore) AdjustPhaseCommitted(sess interfaces.TxSession, phaseID string, amount decimal.Decimal, dir entities.AdjustDirection) error {
	return s.stageScalarAdjust(sess, s.phasesTable, phaseID, "committed_cost", amount, dir)
}

func (s *SpendingLedgerStore) AdjustProjectSpending(sess interfaces.TxSession, projectID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error {
	return s.stageMapAdjust(sess, s.projectsTable, projectID, "actual_spending", "actual_total", category, amount, dir)
}

func (s *SpendingLedgerStore) AdjustProjectCommitted(sess interfaces.TxSession, projectID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error {
	return s.stageMapAdjust(sess, s.projectsTable, projectID, "committed_cost", "committed_total", category, amount, dir)
}

// stageMapAdjust increments one category inside a money map plus its running
// total. if_not_exists covers items created before the attribute existed.
func (s *SpendingLedgerStore) stageMapAdjust(sess interfaces.TxSession, table, id, mapAttr, totalAttr string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}
	if _, ok := entities.ParseCategory(string(category)); !ok {
		return interfaces.ErrUnknownCategory
	}
	signed := signedAmount(amount, dir)

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression: aws.String(
				"SET #map.#cat = if_not_exists(#map.#cat, :zero) + :amt, " +
					"#total = if_not_exists(#total, :zero) + :amt, " +
					"#updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#map":        mapAttr,
				"#cat":        string(category),
				"#total":      totalAttr,
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": numAttr(decimal.Zero),
				":amt":  numAttr(signed),
				":now":  &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func (s *SpendingLedgerStore) stageScalarAdjust(sess interfaces.TxSession, table, id, attr string, amount decimal.Decimal, dir entities.AdjustDirection) error {
	dyn, err := sessionOf(sess)
	if err != nil {
		return err
	}
	signed := signedAmount(amount, dir)

	dyn.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:    aws.String("SET #attr = if_not_exists(#attr, :zero) + :amt, #updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#attr":       attr,
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": numAttr(decimal.Zero),
				":amt":  numAttr(signed),
				":now":  &types.AttributeValueMemberS{Value: nowRFC3339()},
			},
		},
	})
	return nil
}

func signedAmount(amount decimal.Decimal, dir entities.AdjustDirection) decimal.Decimal {
	if dir == entities.DirectionSubtract {
		return amount.Neg()
	}
	return amount
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
