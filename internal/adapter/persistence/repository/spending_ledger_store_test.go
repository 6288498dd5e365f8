package repository

import (
	"errors"
	"strings"
	"testing"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func stagedUpdate(t *testing.T, sess *DynamoTxSession) *types.Update {
	t.Helper()
	if len(sess.items) != 1 {
		t.Fatalf("expected exactly 1 staged item, got %d", len(sess.items))
	}
	u := sess.items[0].Update
	if u == nil {
		t.Fatalf("expected staged item to be an Update")
	}
	return u
}

func numValue(t *testing.T, values map[string]types.AttributeValue, key string) decimal.Decimal {
	t.Helper()
	n, ok := values[key].(*types.AttributeValueMemberN)
	if !ok {
		t.Fatalf("expected %s to be a numeric attribute, got %T", key, values[key])
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		t.Fatalf("expected %s to parse as a decimal: %v", key, err)
	}
	return d
}

func TestSpendingLedgerStore_AdjustPhaseSpending(t *testing.T) {
	store := NewSpendingLedgerStore()

	t.Run("stages category and total in one expression", func(t *testing.T) {
		sess := &DynamoTxSession{}
		err := store.AdjustPhaseSpending(sess, "phase-1", entities.CategoryMaterials, decimal.NewFromInt(1500), entities.DirectionAdd)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		u := stagedUpdate(t, sess)
		expr := *u.UpdateExpression
		if !strings.Contains(expr, "#map.#cat = if_not_exists(#map.#cat, :zero) + :amt") {
			t.Fatalf("expected category increment in expression, got %q", expr)
		}
		if !strings.Contains(expr, "#total = if_not_exists(#total, :zero) + :amt") {
			t.Fatalf("expected total increment in the same expression, got %q", expr)
		}
		if u.ExpressionAttributeNames["#map"] != "actual_spending" {
			t.Fatalf("expected actual_spending map, got %s", u.ExpressionAttributeNames["#map"])
		}
		if u.ExpressionAttributeNames["#cat"] != "materials" {
			t.Fatalf("expected materials category, got %s", u.ExpressionAttributeNames["#cat"])
		}
		if got := numValue(t, u.ExpressionAttributeValues, ":amt"); !got.Equal(decimal.NewFromInt(1500)) {
			t.Fatalf("expected amount 1500, got %s", got)
		}
	})

	t.Run("subtract negates the staged amount", func(t *testing.T) {
		sess := &DynamoTxSession{}
		err := store.AdjustPhaseSpending(sess, "phase-1", entities.CategoryLabour, decimal.NewFromInt(300), entities.DirectionSubtract)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		u := stagedUpdate(t, sess)
		if got := numValue(t, u.ExpressionAttributeValues, ":amt"); !got.Equal(decimal.NewFromInt(-300)) {
			t.Fatalf("expected amount -300, got %s", got)
		}
	})

	t.Run("unknown category stages nothing", func(t *testing.T) {
		sess := &DynamoTxSession{}
		err := store.AdjustPhaseSpending(sess, "phase-1", entities.Category("furniture"), decimal.NewFromInt(10), entities.DirectionAdd)
		if !errors.Is(err, interfaces.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
		if len(sess.items) != 0 {
			t.Fatalf("expected nothing staged, got %d items", len(sess.items))
		}
	})
}

func TestSpendingLedgerStore_AdjustPhaseCommitted(t *testing.T) {
	store := NewSpendingLedgerStore()

	sess := &DynamoTxSession{}
	err := store.AdjustPhaseCommitted(sess, "phase-1", decimal.NewFromInt(4500), entities.DirectionAdd)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u := stagedUpdate(t, sess)
	if u.ExpressionAttributeNames["#attr"] != "committed_cost" {
		t.Fatalf("expected committed_cost attribute, got %s", u.ExpressionAttributeNames["#attr"])
	}
	if *u.ConditionExpression != "attribute_exists(#id)" {
		t.Fatalf("expected existence condition, got %q", *u.ConditionExpression)
	}
}

func TestSpendingLedgerStore_AdjustProjectCommitted(t *testing.T) {
	store := NewSpendingLedgerStore()

	sess := &DynamoTxSession{}
	err := store.AdjustProjectCommitted(sess, "project-1", entities.CategoryEquipment, decimal.NewFromInt(900), entities.DirectionAdd)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u := stagedUpdate(t, sess)
	if u.ExpressionAttributeNames["#map"] != "committed_cost" {
		t.Fatalf("expected committed_cost map, got %s", u.ExpressionAttributeNames["#map"])
	}
	if u.ExpressionAttributeNames["#total"] != "committed_total" {
		t.Fatalf("expected committed_total, got %s", u.ExpressionAttributeNames["#total"])
	}
}
