package monitoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/integrator/ads"
	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
)

// AccountHealth é o resultado da verificação de saúde de uma única conta
type AccountHealth struct {
	Account   *domain.Account
	Snapshot  *domain.DailySnapshot
	IsServing *bool
}

// HealthChecker executa a sequência completa de verificação para uma conta
type HealthChecker interface {
	CheckAccount(ctx context.Context, account *domain.Account) (*AccountHealth, error)
}

// Service sequencia snapshot -> spend -> sonda de veiculação -> KPIs para uma
// conta, com caches que evitam tempestades de requisições contra a API de
// anúncios em invocações repetidas no mesmo dia
type Service struct {
	cfg          *config.Config
	snapshotRepo repository.SnapshotRepository
	probeRepo    repository.ProbeRepository
	adsService   ads.AdsIntegrator

	// memo é a tabela de memoização por (conta, dia); evita reexecutar a
	// sequência completa em reinvocações redundantes dentro do mesmo dia
	memoMutex sync.Mutex
	memo      map[string]*AccountHealth

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepository,
	probeRepo repository.ProbeRepository,
	adsService ads.AdsIntegrator,
) *Service {
	return &Service{
		cfg:          cfg,
		snapshotRepo: snapshotRepo,
		probeRepo:    probeRepo,
		adsService:   adsService,
		memo:         make(map[string]*AccountHealth),
		now:          time.Now,
	}
}

// CheckAccount executa a sequência de verificação para uma conta. Passos
// posteriores dependem do snapshot produzido pelos anteriores, então a
// execução dentro de uma conta é estritamente sequencial.
func (s *Service) CheckAccount(ctx context.Context, account *domain.Account) (*AccountHealth, error) {
	if account == nil {
		return nil, fmt.Errorf("conta inválida para verificação de saúde")
	}

	key := s.memoKey(account.ID)

	s.memoMutex.Lock()
	memoized, found := s.memo[key]
	s.memoMutex.Unlock()

	var snapshot *domain.DailySnapshot
	var err error

	if found {
		// Reinvocação no mesmo dia: reaproveita o snapshot já carregado. Os
		// passos seguintes têm caches próprios (spend gravada, flag de KPIs,
		// sonda por hora) e refazem somente o que ficou pendente na passada
		// anterior.
		snapshot = memoized.Snapshot
	} else {
		snapshot, err = s.GetOrCreateSnapshot(account.ID, s.now())
		if err != nil {
			return nil, err
		}
	}

	snapshot, err = s.EnsureSpendToDate(account, snapshot)
	if err != nil {
		return nil, err
	}

	isServing := s.EnsureServingStatus(ctx, account)

	if err := s.EnsureKPIs(account, snapshot); err != nil {
		// A flag permanece falsa; a próxima passada tenta de novo
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("Erro ao buscar KPIs para a conta. Continuando sem eles.")
	}

	health := &AccountHealth{
		Account:   account,
		Snapshot:  snapshot,
		IsServing: isServing,
	}

	s.memoMutex.Lock()
	s.memo[key] = health
	s.memoMutex.Unlock()

	return health, nil
}

// memoKey combina conta e dia civil; a troca de dia invalida naturalmente a tabela
func (s *Service) memoKey(accountID string) string {
	return fmt.Sprintf("%s:%s", accountID, s.now().Format(time.DateOnly))
}
