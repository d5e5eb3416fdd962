package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/internal/usecases/alerting"
	"github.com/vfg2006/account-health-api/pkg/apiErrors"
)

func ListAccountAlerts(service alerting.AlertService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAccountAlerts")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		includeArchived := r.URL.Query().Get("include_archived") == "true"

		alerts, err := service.ListAlerts(accountID, includeArchived)
		if err != nil {
			logrus.Error("Error listing alerts:", err)

			var alertErr *alerting.AlertError
			if errors.As(err, &alertErr) {
				apiErrors.WriteError(w, alertErr.Code, alertErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(alerts)
	})
}

func ArchiveAlerts(service alerting.AlertService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ArchiveAlerts")

		var request domain.ArchiveAlertsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.ArchiveAlerts(&request); err != nil {
			logrus.Error("Error archiving alerts:", err)

			var alertErr *alerting.AlertError
			if errors.As(err, &alertErr) {
				apiErrors.WriteError(w, alertErr.Code, alertErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao arquivar alertas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":  "Alertas atualizados com sucesso",
			"archived": request.Archived,
			"quantity": len(request.AlertIDs),
		})
	})
}
