package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeNet(t *testing.T) {
	net := ComputeNet(
		amount("5000.00"), // basic
		amount("10"),      // overtime hours
		amount("25.50"),   // overtime rate
		amount("300.00"),  // bonuses
		amount("150.00"),  // deductions
		amount("425.00"),  // tax
	)

	// 5000 + 255 + 300 - 150 - 425
	assert.True(t, net.Equal(amount("4980.00")), "got %s", net)
}

func TestComputeNet_ZeroOvertime(t *testing.T) {
	net := ComputeNet(
		amount("3200.00"),
		decimal.Zero, decimal.Zero, decimal.Zero,
		amount("200.00"),
		amount("320.00"),
	)

	assert.True(t, net.Equal(amount("2680.00")), "got %s", net)
}

func TestComputeNet_CanGoNegative(t *testing.T) {
	net := ComputeNet(
		amount("100.00"),
		decimal.Zero, decimal.Zero, decimal.Zero,
		amount("150.00"),
		decimal.Zero,
	)

	assert.True(t, net.IsNegative())
}

func TestAmount_EmptyIsZero(t *testing.T) {
	assert.True(t, Amount("").IsZero())
	assert.True(t, Amount("1250.75").Equal(amount("1250.75")))
}
