package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetProgress descreve a barra de progresso de orçamento de uma conta
type BudgetProgress struct {
	Percent     float64 `json:"percent"`
	RawPercent  float64 `json:"raw_percent"`
	DayOfMonth  int     `json:"day_of_month"`
	DaysInMonth int     `json:"days_in_month"`
}

// NewBudgetProgress calcula o descritor de progresso para um gasto e orçamento.
// Percent é limitado a 100; RawPercent preserva o valor real para a apresentação.
func NewBudgetProgress(spendToDate *decimal.Decimal, monthlyBudget decimal.Decimal, asOf time.Time) *BudgetProgress {
	dayOfMonth := asOf.Day()
	daysInMonth := time.Date(asOf.Year(), asOf.Month()+1, 0, 0, 0, 0, 0, asOf.Location()).Day()

	progress := &BudgetProgress{
		DayOfMonth:  dayOfMonth,
		DaysInMonth: daysInMonth,
	}

	if spendToDate == nil || monthlyBudget.LessThanOrEqual(decimal.Zero) {
		return progress
	}

	rawPercent := spendToDate.Div(monthlyBudget).InexactFloat64() * 100
	progress.RawPercent = rawPercent
	progress.Percent = rawPercent
	if progress.Percent > 100 {
		progress.Percent = 100
	}

	return progress
}

// PortfolioRow é a visão derivada de uma conta para o painel de portfólio.
// Nunca é persistida; é recalculada a cada passada de agregação.
type PortfolioRow struct {
	Account     *Account        `json:"account"`
	Snapshot    *DailySnapshot  `json:"snapshot"`
	IsServing   *bool           `json:"is_serving"`
	AlertCounts AlertCounts     `json:"alert_counts"`
	Progress    *BudgetProgress `json:"progress"`
}
