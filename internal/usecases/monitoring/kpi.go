package monitoring

import (
	"fmt"

	"github.com/vfg2006/account-health-api/internal/domain"
)

// EnsureKPIs garante que o snapshot do dia carrega o pacote de KPIs (CPC, CTR,
// impressões etc. por janela de 7, 30 e 90 dias). A flag kpi_fetched só vira
// verdadeira após persistência bem sucedida, então uma falha aqui deixa a
// próxima passada repetir a busca.
func (s *Service) EnsureKPIs(account *domain.Account, snapshot *domain.DailySnapshot) error {
	if snapshot.KPIFetched {
		return nil
	}

	bag, err := s.adsService.GetKPIBundle(account)
	if err != nil {
		return fmt.Errorf("erro ao buscar pacote de KPIs da conta %s: %w", account.ID, err)
	}

	if snapshot.KPIs == nil {
		snapshot.KPIs = make(domain.KPIBag)
	}
	snapshot.KPIs.Merge(bag)

	if err := s.snapshotRepo.UpdateKPIs(snapshot.ID, snapshot.KPIs); err != nil {
		return fmt.Errorf("erro ao persistir KPIs da conta %s: %w", account.ID, err)
	}

	snapshot.KPIFetched = true

	return nil
}
