package domain

import (
	"github.com/shopspring/decimal"
)

// PacingIndicator é a chave discreta de severidade/direção do ritmo de gasto
type PacingIndicator string

const (
	PacingOnPace        PacingIndicator = "ON_PACE"
	PacingOverCritical  PacingIndicator = "OVER_PACING_CRITICAL"
	PacingOverHigh      PacingIndicator = "OVER_PACING_HIGH"
	PacingOverMedium    PacingIndicator = "OVER_PACING_MEDIUM"
	PacingUnderCritical PacingIndicator = "UNDER_PACING_CRITICAL"
	PacingUnderHigh     PacingIndicator = "UNDER_PACING_HIGH"
	PacingUnderMedium   PacingIndicator = "UNDER_PACING_MEDIUM"
)

// pacingBand é uma faixa de desvio percentual mapeada para um indicador.
// A direção é preservada na chave para que a apresentação possa diferenciar
// "gastando rápido demais" de "gastando devagar demais".
type pacingBand struct {
	overPacing bool
	cutoffPct  float64
	indicator  PacingIndicator
}

// pacingBands é a tabela estática de faixas, da mais severa para a menos
// severa. A primeira faixa que casar vence; sem casamento, o ritmo é neutro.
var pacingBands = []pacingBand{
	{overPacing: true, cutoffPct: 75, indicator: PacingOverCritical},
	{overPacing: false, cutoffPct: 75, indicator: PacingUnderCritical},
	{overPacing: true, cutoffPct: 50, indicator: PacingOverHigh},
	{overPacing: false, cutoffPct: 50, indicator: PacingUnderHigh},
	{overPacing: true, cutoffPct: 33, indicator: PacingOverMedium},
	{overPacing: false, cutoffPct: 33, indicator: PacingUnderMedium},
}

// ClassifyPacing classifica o desvio entre o gasto acumulado e o gasto
// esperado pelo calendário em um indicador discreto. Orçamento menor ou
// igual a zero é tratado como fração zero, nunca como divisão por zero.
func ClassifyPacing(spendToDate, monthlyBudget decimal.Decimal, dayOfMonth, daysInMonth int) PacingIndicator {
	if daysInMonth <= 0 {
		return PacingOnPace
	}

	expectedFraction := float64(dayOfMonth) / float64(daysInMonth)

	actualFraction := 0.0
	if monthlyBudget.GreaterThan(decimal.Zero) {
		actualFraction = spendToDate.Div(monthlyBudget).InexactFloat64()
	}

	deviationPct := (actualFraction - expectedFraction) * 100

	for _, band := range pacingBands {
		if band.overPacing && deviationPct >= band.cutoffPct {
			return band.indicator
		}
		if !band.overPacing && deviationPct <= -band.cutoffPct {
			return band.indicator
		}
	}

	return PacingOnPace
}

// IsOverPacing indica se a chave representa gasto acima do esperado
func (p PacingIndicator) IsOverPacing() bool {
	return p == PacingOverCritical || p == PacingOverHigh || p == PacingOverMedium
}

// IsUnderPacing indica se a chave representa gasto abaixo do esperado
func (p PacingIndicator) IsUnderPacing() bool {
	return p == PacingUnderCritical || p == PacingUnderHigh || p == PacingUnderMedium
}
