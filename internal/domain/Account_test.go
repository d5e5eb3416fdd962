package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountDailyBudget(t *testing.T) {
	tests := []struct {
		name          string
		monthlyBudget float64
		expected      string
	}{
		{
			name:          "Orçamento mensal positivo - divide pela média de dias do mês",
			monthlyBudget: 3040,
			expected:      "100",
		},
		{
			name:          "Orçamento mensal zero - orçamento diário zero",
			monthlyBudget: 0,
			expected:      "0",
		},
		{
			name:          "Orçamento mensal negativo - orçamento diário zero",
			monthlyBudget: -500,
			expected:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{MonthlyBudget: decimal.NewFromFloat(tt.monthlyBudget)}

			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, account.DailyBudget().Equal(expected),
				"esperado %s, obtido %s", expected, account.DailyBudget())
		})
	}
}

func TestAccountIsConnected(t *testing.T) {
	connected := &Account{Status: AccountStatusConnected}
	disconnected := &Account{Status: AccountStatusDisconnected}

	assert.True(t, connected.IsConnected())
	assert.False(t, disconnected.IsConnected())
	assert.False(t, (&Account{}).IsConnected())
}
