package monitoring

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/utils"
)

// EnsureSpendToDate garante que o snapshot do dia carrega o gasto acumulado do
// mês e o indicador de ritmo derivado dele. Um valor já presente no snapshot é
// reutilizado sem nova chamada à API de anúncios.
//
// Quando a busca falha, o snapshot é marcado com um "desconhecido" explícito
// (tentativa registrada, valor nulo) antes do erro subir: a interface mostra
// placeholder em vez de um valor obsoleto, e a próxima passada tenta de novo.
func (s *Service) EnsureSpendToDate(account *domain.Account, snapshot *domain.DailySnapshot) (*domain.DailySnapshot, error) {
	if snapshot.HasSpend() {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"snapshot_id": snapshot.ID,
		}).Debug("Gasto acumulado já presente no snapshot do dia. Reutilizando.")
		return snapshot, nil
	}

	spend, err := s.adsService.GetSpendToDate(account)
	attemptedAt := s.now()

	if err != nil {
		if persistErr := s.snapshotRepo.UpdateSpend(snapshot.ID, nil, nil, attemptedAt); persistErr != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"snapshot_id": snapshot.ID,
				"error":       persistErr.Error(),
			}).Error("Erro ao registrar falha de busca de gasto no snapshot")
		}

		snapshot.SpendToDate = nil
		snapshot.PacingIndicator = nil
		snapshot.SpendFetchedAt = &attemptedAt

		return snapshot, fmt.Errorf("erro ao buscar gasto acumulado da conta %s: %w", account.ID, err)
	}

	if spend == nil {
		// Plataforma respondeu sem dados: registra o desconhecido e segue
		if persistErr := s.snapshotRepo.UpdateSpend(snapshot.ID, nil, nil, attemptedAt); persistErr != nil {
			return nil, fmt.Errorf("erro ao atualizar snapshot da conta %s: %w", account.ID, persistErr)
		}

		snapshot.SpendToDate = nil
		snapshot.PacingIndicator = nil
		snapshot.SpendFetchedAt = &attemptedAt

		return snapshot, nil
	}

	indicator := domain.ClassifyPacing(*spend, account.MonthlyBudget, attemptedAt.Day(), utils.DaysInMonth(attemptedAt))

	if err := s.snapshotRepo.UpdateSpend(snapshot.ID, spend, &indicator, attemptedAt); err != nil {
		return nil, fmt.Errorf("erro ao atualizar gasto no snapshot da conta %s: %w", account.ID, err)
	}

	snapshot.SpendToDate = spend
	snapshot.PacingIndicator = &indicator
	snapshot.SpendFetchedAt = &attemptedAt

	return snapshot, nil
}
