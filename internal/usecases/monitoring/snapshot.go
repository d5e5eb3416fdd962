package monitoring

import (
	"fmt"
	"time"

	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/pkg/utils"
)

const snapshotIDSize = 10

// GetOrCreateSnapshot devolve o snapshot do dia para a conta, criando um
// registro vazio quando é a primeira verificação do dia. Falha de persistência
// aqui é fatal para a conta: nenhum passo posterior tem onde gravar resultado.
func (s *Service) GetOrCreateSnapshot(accountID string, asOf time.Time) (*domain.DailySnapshot, error) {
	snapshot, err := s.snapshotRepo.GetByAccountIDAndDay(accountID, asOf)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot diário da conta %s: %w", accountID, err)
	}

	if snapshot != nil {
		return snapshot, nil
	}

	id, err := utils.GenerateID(snapshotIDSize)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do snapshot: %w", err)
	}

	now := s.now()
	snapshot = &domain.DailySnapshot{
		ID:        id,
		AccountID: accountID,
		KPIs:      make(domain.KPIBag),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.snapshotRepo.Create(snapshot); err != nil {
		return nil, fmt.Errorf("erro ao criar snapshot diário da conta %s: %w", accountID, err)
	}

	return snapshot, nil
}
