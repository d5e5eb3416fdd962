package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
)

const defaultMaxConcurrentAccounts = 8

// PortfolioAggregator monta a visão consolidada do portfólio
type PortfolioAggregator interface {
	Aggregate(ctx context.Context, accounts []*domain.Account) []*domain.PortfolioRow
}

// Aggregator verifica todas as contas do portfólio em paralelo, com limite de
// concorrência para não estourar as cotas da API de anúncios. Falha de uma
// conta nunca derruba a passada: a linha correspondente é descartada e as
// demais seguem.
type Aggregator struct {
	checker       HealthChecker
	alertRepo     repository.AlertRepository
	maxConcurrent int
	now           func() time.Time
}

func NewAggregator(checker HealthChecker, alertRepo repository.AlertRepository, cfg *config.Config) *Aggregator {
	maxConcurrent := cfg.PortfolioRefresh.MaxConcurrentAccounts
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentAccounts
	}

	return &Aggregator{
		checker:       checker,
		alertRepo:     alertRepo,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

// Aggregate devolve uma linha por conta processada com sucesso, na mesma ordem
// da lista de entrada independentemente da ordem de término das goroutines
func (a *Aggregator) Aggregate(ctx context.Context, accounts []*domain.Account) []*domain.PortfolioRow {
	if len(accounts) == 0 {
		return []*domain.PortfolioRow{}
	}

	// Cada goroutine escreve apenas na sua posição; a ordem de entrada é
	// preservada sem sincronização adicional
	results := make([]*domain.PortfolioRow, len(accounts))

	pool := pond.NewPool(a.maxConcurrent)
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)

	for i, account := range accounts {
		group.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"account_id": account.ID,
						"panic":      r,
					}).Error("Pânico ao processar conta no agregador de portfólio. Excluindo desta passada.")
				}
			}()

			results[i] = a.processAccount(ctx, account)
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		logrus.WithField("error", err.Error()).Warn("Erro ao aguardar processamento do portfólio")
	}

	rows := make([]*domain.PortfolioRow, 0, len(accounts))
	for _, row := range results {
		if row != nil {
			rows = append(rows, row)
		}
	}

	return rows
}

func (a *Aggregator) processAccount(ctx context.Context, account *domain.Account) *domain.PortfolioRow {
	health, err := a.checker.CheckAccount(ctx, account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao verificar conta no agregador de portfólio. Excluindo desta passada.")
		return nil
	}

	counts, err := a.alertRepo.CountByAccountID(account.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Erro ao contar alertas da conta. Excluindo desta passada.")
		return nil
	}

	progress := domain.NewBudgetProgress(health.Snapshot.SpendToDate, account.MonthlyBudget, a.now())

	return &domain.PortfolioRow{
		Account:     account,
		Snapshot:    health.Snapshot,
		IsServing:   health.IsServing,
		AlertCounts: counts,
		Progress:    progress,
	}
}
