package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("bad decimal literal %q: %v", s, err))
	}
	return d
}

// decEq matches a decimal.Decimal by numeric value, not representation.
type decEq struct {
	want decimal.Decimal
}

func eqDec(s string) decEq {
	return decEq{want: dec(s)}
}

func (m decEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decEq) String() string {
	return "decimal equal to " + m.want.String()
}
