package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPIWindows são as janelas móveis (em dias) suportadas pelo bundle de KPIs
var KPIWindows = []int{7, 30, 90}

// WindowValues mapeia a janela em dias para o valor da métrica
type WindowValues map[int]float64

// KPIBag agrupa métricas de desempenho por nome e janela, evitando o acesso
// por campos concatenados com sufixo (ex: "cpc7") vindos da API
type KPIBag map[string]WindowValues

// Get retorna o valor de uma métrica para uma janela específica
func (b KPIBag) Get(metric string, windowDays int) (float64, bool) {
	windows, ok := b[metric]
	if !ok {
		return 0, false
	}

	value, ok := windows[windowDays]
	return value, ok
}

// Merge combina outro conjunto de métricas neste, sobrescrevendo valores existentes
func (b KPIBag) Merge(other KPIBag) {
	for metric, windows := range other {
		if b[metric] == nil {
			b[metric] = make(WindowValues, len(windows))
		}
		for days, value := range windows {
			b[metric][days] = value
		}
	}
}

// DailySnapshot representa o registro de métricas de uma conta para um dia.
// Existe no máximo um por (conta, dia); a criação é idempotente e a primeira
// linha encontrada na leitura vence em caso de duplicata entre sessões.
type DailySnapshot struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"account_id"`
	SpendToDate     *decimal.Decimal `json:"spend_to_date"`
	SpendFetchedAt  *time.Time       `json:"spend_fetched_at"`
	PacingIndicator *PacingIndicator `json:"pacing_indicator"`
	KPIFetched      bool             `json:"kpi_fetched"`
	KPIs            KPIBag           `json:"kpis"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// HasSpend indica se a spend do dia já foi obtida com sucesso.
// Um valor nulo após uma tentativa significa "desconhecido" e é
// reavaliado no próximo ciclo de atualização.
func (s *DailySnapshot) HasSpend() bool {
	return s != nil && s.SpendToDate != nil
}

// SpendAttempted indica se já houve ao menos uma tentativa de busca de spend hoje
func (s *DailySnapshot) SpendAttempted() bool {
	return s != nil && s.SpendFetchedAt != nil
}
