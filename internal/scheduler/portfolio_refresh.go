package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/internal/usecases/monitoring"
)

// PortfolioRefreshConfig representa a configuração do agendador de atualização do portfólio
type PortfolioRefreshConfig struct {
	IntervalMinutes       int
	MaxConcurrentAccounts int
	RefreshEnabled        bool
}

// PortfolioState é a visão publicada do portfólio, trocada atomicamente a cada ciclo
type PortfolioState struct {
	Rows        []*domain.PortfolioRow
	Cycle       uint64
	RefreshedAt time.Time
}

// PortfolioRefreshService gerencia o ciclo periódico de atualização do portfólio.
// A visão publicada permanece disponível enquanto um novo ciclo roda; ciclos
// concorrentes resolvem por número de sequência (o mais novo vence).
type PortfolioRefreshService struct {
	scheduler   *gocron.Scheduler
	config      PortfolioRefreshConfig
	appConfig   *config.Config
	accountRepo repository.AccountRepository
	aggregator  monitoring.PortfolioAggregator

	ctx context.Context

	refreshRunning         bool
	syncMutex              sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time

	stateMutex     sync.RWMutex
	state          *PortfolioState
	nextCycle      uint64
	publishedCycle uint64
}

// NewPortfolioRefreshService cria uma nova instância do serviço de atualização do portfólio
func NewPortfolioRefreshService(
	accountRepo repository.AccountRepository,
	aggregator monitoring.PortfolioAggregator,
	appConfig *config.Config,
) *PortfolioRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := PortfolioRefreshConfig{
		IntervalMinutes:       appConfig.PortfolioRefresh.IntervalMinutes,
		MaxConcurrentAccounts: appConfig.PortfolioRefresh.MaxConcurrentAccounts,
		RefreshEnabled:        appConfig.PortfolioRefresh.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_minutes":        refreshConfig.IntervalMinutes,
		"max_concurrent_accounts": refreshConfig.MaxConcurrentAccounts,
		"refresh_enabled":         refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização do portfólio carregada")

	return &PortfolioRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		appConfig:   appConfig,
		accountRepo: accountRepo,
		aggregator:  aggregator,
		ctx:         context.Background(),
	}
}

// Start inicia o agendador e dispara o primeiro ciclo imediatamente
func (s *PortfolioRefreshService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.RefreshEnabled {
		logrus.Info("Atualização periódica do portfólio desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).
		Info("Iniciando agendador de atualização do portfólio")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().Do(func() {
		s.refreshPortfolio()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do portfólio: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Primeiro ciclo sem esperar o intervalo: o painel carrega com dados
	go s.refreshPortfolio()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do portfólio")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshPortfolio executa um ciclo completo de atualização do portfólio
func (s *PortfolioRefreshService) refreshPortfolio() {
	s.syncMutex.Lock()
	if s.refreshRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do portfólio já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.nextCycle++
	cycle := s.nextCycle
	startTime := time.Now()
	s.lastRefreshStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.WithField("cycle", cycle).Info("Iniciando ciclo de atualização do portfólio")

	accounts, err := s.getConnectedAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para atualização do portfólio")
		return
	}

	rows := s.aggregator.Aggregate(s.ctx, accounts)

	s.publish(rows, cycle)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"cycle":    cycle,
		"duration": duration.String(),
		"accounts": len(accounts),
		"rows":     len(rows),
	}).Info("Ciclo de atualização do portfólio concluído")
}

// publish troca a visão publicada, descartando resultados de ciclos mais antigos
// que terminaram depois de um ciclo mais novo
func (s *PortfolioRefreshService) publish(rows []*domain.PortfolioRow, cycle uint64) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	if cycle < s.publishedCycle {
		logrus.WithFields(logrus.Fields{
			"cycle":           cycle,
			"published_cycle": s.publishedCycle,
		}).Warn("Ciclo de atualização obsoleto, descartando resultado")
		return
	}

	s.publishedCycle = cycle
	s.state = &PortfolioState{
		Rows:        rows,
		Cycle:       cycle,
		RefreshedAt: time.Now(),
	}
}

// getConnectedAccounts busca as contas conectadas à plataforma de anúncios
func (s *PortfolioRefreshService) getConnectedAccounts() ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected})
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta conectada encontrada para atualização do portfólio")
		return []*domain.Account{}, nil
	}

	logrus.WithField("connected_accounts", len(accounts)).
		Info("Contas encontradas para atualização do portfólio")

	return accounts, nil
}

// State retorna a última visão publicada do portfólio; nulo enquanto o primeiro
// ciclo não termina (carregamento inicial)
func (s *PortfolioRefreshService) State() *PortfolioState {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.state
}

// IsLoading indica o carregamento inicial: nenhum ciclo publicado ainda
func (s *PortfolioRefreshService) IsLoading() bool {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.state == nil
}

// IsRefreshing indica um ciclo em andamento; a visão anterior segue publicada
func (s *PortfolioRefreshService) IsRefreshing() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.refreshRunning
}

// TriggerManualRefresh inicia manualmente um ciclo de atualização do portfólio
func (s *PortfolioRefreshService) TriggerManualRefresh() {
	s.syncMutex.Lock()
	if s.refreshRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do portfólio já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do portfólio")
	go s.refreshPortfolio()
}

// GetStatus retorna o status atual do agendador
func (s *PortfolioRefreshService) GetStatus() map[string]any {
	s.stateMutex.RLock()
	publishedCycle := s.publishedCycle
	loading := s.state == nil
	s.stateMutex.RUnlock()

	s.syncMutex.Lock()
	refreshing := s.refreshRunning
	startedAt := s.lastRefreshStartedAt
	completedAt := s.lastRefreshCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_interval_minutes":  s.config.IntervalMinutes,
		"max_concurrent_accounts":   s.config.MaxConcurrentAccounts,
		"is_refreshing":             refreshing,
		"is_loading":                loading,
		"published_cycle":           publishedCycle,
		"last_refresh_started_at":   startedAt,
		"last_refresh_completed_at": completedAt,
	}
}
