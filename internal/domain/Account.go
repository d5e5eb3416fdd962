package domain

import (
	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusConnected    AccountStatus = "CONNECTED"
	AccountStatusDisconnected AccountStatus = "DISCONNECTED"
)

// daysPerMonthAverage é a média de dias por mês usada para derivar o orçamento diário
var daysPerMonthAverage = decimal.NewFromFloat(30.4)

// Account representa uma conta de anúncios monitorada
type Account struct {
	ID                 string          `json:"id"`
	ExternalCustomerID string          `json:"external_customer_id"`
	ManagerAccountID   string          `json:"manager_account_id"`
	Name               string          `json:"name"`
	Nickname           *string         `json:"nickname"`
	MonthlyBudget      decimal.Decimal `json:"monthly_budget"`
	CurrencySymbol     *string         `json:"currency_symbol"`
	Status             AccountStatus   `json:"status"`
}

// DailyBudget deriva o orçamento diário a partir do orçamento mensal
func (a *Account) DailyBudget() decimal.Decimal {
	if a.MonthlyBudget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return a.MonthlyBudget.Div(daysPerMonthAverage)
}

// IsConnected indica se a conta está conectada à plataforma de anúncios
func (a *Account) IsConnected() bool {
	return a.Status == AccountStatusConnected
}

type UpdateAccountRequest struct {
	ID             string           `json:"id"`
	Nickname       *string          `json:"nickname,omitempty"`
	MonthlyBudget  *decimal.Decimal `json:"monthly_budget,omitempty"`
	CurrencySymbol *string          `json:"currency_symbol,omitempty"`
	Status         *string          `json:"status,omitempty"`
}

type AccountResponse struct {
	ID                 string          `json:"id"`
	ExternalCustomerID string          `json:"external_customer_id"`
	Name               string          `json:"name"`
	Nickname           *string         `json:"nickname"`
	MonthlyBudget      decimal.Decimal `json:"monthly_budget"`
	Status             AccountStatus   `json:"status"`
}
