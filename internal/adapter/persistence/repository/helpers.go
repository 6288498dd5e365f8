package repository

import (
	"fmt"
	"os"

	"construfin/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decimalAttr marshals a decimal as a DynamoDB number attribute, keeping
// exact values on the wire instead of float64 round-trips.
type decimalAttr decimal.Decimal

func (d decimalAttr) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: decimal.Decimal(d).String()}, nil
}

func (d *decimalAttr) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		parsed, err := decimal.NewFromString(v.Value)
		if err != nil {
			return fmt.Errorf("invalid number attribute %q: %w", v.Value, err)
		}
		*d = decimalAttr(parsed)
		return nil
	case *types.AttributeValueMemberNULL:
		*d = decimalAttr(decimal.Zero)
		return nil
	default:
		return fmt.Errorf("unexpected attribute type %T for decimal", av)
	}
}

func (d decimalAttr) dec() decimal.Decimal {
	return decimal.Decimal(d)
}

func numAttr(d decimal.Decimal) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: d.String()}
}

// categoryAmountsItem is the stored shape of a per-category money map.
type categoryAmountsItem struct {
	Materials       decimalAttr `dynamodbav:"materials"`
	Labour          decimalAttr `dynamodbav:"labour"`
	Equipment       decimalAttr `dynamodbav:"equipment"`
	Subcontractors  decimalAttr `dynamodbav:"subcontractors"`
	Preconstruction decimalAttr `dynamodbav:"preconstruction"`
	Indirect        decimalAttr `dynamodbav:"indirect"`
	Contingency     decimalAttr `dynamodbav:"contingency"`
}

func toAmountsItem(a entities.CategoryAmounts) categoryAmountsItem {
	return categoryAmountsItem{
		Materials:       decimalAttr(a.Materials),
		Labour:          decimalAttr(a.Labour),
		Equipment:       decimalAttr(a.Equipment),
		Subcontractors:  decimalAttr(a.Subcontractors),
		Preconstruction: decimalAttr(a.Preconstruction),
		Indirect:        decimalAttr(a.Indirect),
		Contingency:     decimalAttr(a.Contingency),
	}
}

func fromAmountsItem(it categoryAmountsItem) entities.CategoryAmounts {
	return entities.CategoryAmounts{
		Materials:       it.Materials.dec(),
		Labour:          it.Labour.dec(),
		Equipment:       it.Equipment.dec(),
		Subcontractors:  it.Subcontractors.dec(),
		Preconstruction: it.Preconstruction.dec(),
		Indirect:        it.Indirect.dec(),
		Contingency:     it.Contingency.dec(),
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
