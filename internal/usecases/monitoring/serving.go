package monitoring

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/internal/domain"
)

// EnsureServingStatus devolve o status de veiculação da conta para a hora
// corrente. O cálculo é assíncrono do lado da plataforma: disparamos o gatilho
// e reconsultamos a sonda, com uma única nova tentativa após o atraso
// configurado. Retorno nulo significa "verificando" e nunca é tratado como
// erro; a interface mostra o placeholder e a próxima hora tenta de novo.
func (s *Service) EnsureServingStatus(ctx context.Context, account *domain.Account) *bool {
	hour := s.now()

	probe, err := s.probeRepo.GetByAccountIDAndHour(account.ID, hour)
	if err != nil {
		s.logProbeError(account.ID, "Erro ao buscar sonda de veiculação", err)
		return nil
	}

	if probe != nil {
		return &probe.IsServing
	}

	if err := s.adsService.TriggerServingStatus(account.ID); err != nil {
		s.logProbeError(account.ID, "Erro ao disparar verificação de veiculação", err)
		return nil
	}

	// Reconciliação: o cálculo externo grava a sonda como efeito colateral
	for attempt := 0; attempt < 2; attempt++ {
		probe, err = s.probeRepo.GetByAccountIDAndHour(account.ID, hour)
		if err != nil {
			s.logProbeError(account.ID, "Erro ao reconsultar sonda de veiculação", err)
			return nil
		}

		if probe != nil {
			return &probe.IsServing
		}

		if attempt == 0 {
			delay := time.Duration(s.cfg.ServingProbe.ReconcileDelaySeconds) * time.Second
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
		}
	}

	return nil
}

func (s *Service) logProbeError(accountID, message string, err error) {
	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	}).Warn(message)
}
