package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/internal/scheduler"
	"github.com/vfg2006/account-health-api/internal/usecases/account"
)

// PortfolioRowResponse é a linha do painel de portfólio no formato da API
type PortfolioRowResponse struct {
	Account        *domain.Account        `json:"account"`
	CurrencySymbol *string                `json:"currency_symbol"`
	DailyBudget    decimal.Decimal        `json:"daily_budget"`
	Snapshot       *domain.DailySnapshot  `json:"snapshot"`
	IsServing      *bool                  `json:"is_serving"`
	AlertCounts    domain.AlertCounts     `json:"alert_counts"`
	TotalAlerts    int                    `json:"total_alerts"`
	Progress       *domain.BudgetProgress `json:"progress"`
}

// PortfolioResponse é a resposta consolidada do painel de portfólio
type PortfolioResponse struct {
	Loading     bool                    `json:"loading"`
	Refreshing  bool                    `json:"refreshing"`
	Cycle       uint64                  `json:"cycle"`
	RefreshedAt *time.Time              `json:"refreshed_at"`
	Rows        []*PortfolioRowResponse `json:"rows"`
}

// GetPortfolio devolve a última visão publicada do portfólio. Durante um novo
// ciclo a visão anterior segue sendo servida (stale-while-revalidate).
func GetPortfolio(refreshService *scheduler.PortfolioRefreshService, accountService account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPortfolio")

		state := refreshService.State()

		response := &PortfolioResponse{
			Refreshing: refreshService.IsRefreshing(),
			Rows:       []*PortfolioRowResponse{},
		}

		if state == nil {
			// Carregamento inicial: o primeiro ciclo ainda não terminou
			response.Loading = true
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(response)
			return
		}

		response.Cycle = state.Cycle
		response.RefreshedAt = &state.RefreshedAt

		for _, row := range state.Rows {
			response.Rows = append(response.Rows, &PortfolioRowResponse{
				Account:        row.Account,
				CurrencySymbol: accountService.ResolveCurrencySymbol(row.Account),
				DailyBudget:    row.Account.DailyBudget(),
				Snapshot:       row.Snapshot,
				IsServing:      row.IsServing,
				AlertCounts:    row.AlertCounts,
				TotalAlerts:    row.AlertCounts.Total(),
				Progress:       row.Progress,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}
