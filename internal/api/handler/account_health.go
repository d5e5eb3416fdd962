package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/internal/usecases/account"
	"github.com/vfg2006/account-health-api/internal/usecases/alerting"
	"github.com/vfg2006/account-health-api/internal/usecases/monitoring"
	"github.com/vfg2006/account-health-api/pkg/apiErrors"
)

// GetAccountHealth executa a verificação de saúde de uma única conta e devolve
// a visão detalhada dela. Falha ao buscar o gasto não vira erro para o cliente:
// a resposta carrega placeholders e a próxima atualização tenta de novo.
func GetAccountHealth(
	accountService account.AccountService,
	alertService alerting.AlertService,
	checker monitoring.HealthChecker,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccountHealth")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		acc, err := accountService.GetAccount(accountID)
		if err != nil {
			logrus.Error("Error fetching account:", err)

			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar conta", nil)
			return
		}

		response := &PortfolioRowResponse{
			Account:        acc,
			CurrencySymbol: accountService.ResolveCurrencySymbol(acc),
			DailyBudget:    acc.DailyBudget(),
		}

		if acc.IsConnected() {
			health, err := checker.CheckAccount(r.Context(), acc)
			if err != nil {
				// Placeholders neutros: o painel mostra "verificando" no lugar
				// de um banner de erro
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"error":      err.Error(),
				}).Warn("Erro ao verificar saúde da conta. Respondendo com placeholders.")
			} else {
				response.Snapshot = health.Snapshot
				response.IsServing = health.IsServing
				response.Progress = domain.NewBudgetProgress(health.Snapshot.SpendToDate, acc.MonthlyBudget, time.Now())
			}
		} else {
			// Conta desconectada não tem gasto nem veiculação para verificar
			logrus.WithField("account_id", acc.ID).
				Info("Conta desconectada da plataforma. Respondendo sem verificação de saúde.")
		}

		counts, err := alertService.CountAlerts(acc.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"error":      err.Error(),
			}).Warn("Erro ao contar alertas da conta")
		} else {
			response.AlertCounts = counts
			response.TotalAlerts = counts.Total()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}
