package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/account-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
	monitoringmocks "github.com/vfg2006/account-health-api/internal/usecases/monitoring/mocks"
	"go.uber.org/mock/gomock"
)

func newTestRefreshService(ctrl *gomock.Controller) (*PortfolioRefreshService, *mocks.MockAccountRepository, *monitoringmocks.MockPortfolioAggregator) {
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAggregator := monitoringmocks.NewMockPortfolioAggregator(ctrl)

	cfg := &config.Config{}
	cfg.PortfolioRefresh.IntervalMinutes = 15
	cfg.PortfolioRefresh.MaxConcurrentAccounts = 4
	cfg.PortfolioRefresh.Enabled = true

	return NewPortfolioRefreshService(mockAccountRepo, mockAggregator, cfg), mockAccountRepo, mockAggregator
}

func TestPortfolioRefreshService_refreshPortfolio(t *testing.T) {
	t.Run("Ciclo completo - deve publicar a visão do portfólio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockAccountRepo, mockAggregator := newTestRefreshService(ctrl)

		accounts := []*domain.Account{
			{ID: "ACC001", Status: domain.AccountStatusConnected},
			{ID: "ACC002", Status: domain.AccountStatusConnected},
		}
		rows := []*domain.PortfolioRow{
			{Account: accounts[0]},
			{Account: accounts[1]},
		}

		mockAccountRepo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusConnected}).
			Return(accounts, nil)
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), accounts).
			Return(rows)

		assert.True(t, service.IsLoading())

		service.refreshPortfolio()

		assert.False(t, service.IsLoading())
		state := service.State()
		require.NotNil(t, state)
		assert.Equal(t, uint64(1), state.Cycle)
		assert.Len(t, state.Rows, 2)
		assert.WithinDuration(t, time.Now(), state.RefreshedAt, time.Second)
	})

	t.Run("Conta que falhou no ciclo anterior volta no seguinte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockAccountRepo, mockAggregator := newTestRefreshService(ctrl)

		accounts := []*domain.Account{
			{ID: "ACC001", Status: domain.AccountStatusConnected},
			{ID: "ACC002", Status: domain.AccountStatusConnected},
		}

		mockAccountRepo.EXPECT().
			ListAccounts(gomock.Any()).
			Return(accounts, nil).
			Times(2)

		gomock.InOrder(
			// Primeiro ciclo: ACC002 excluída pela falha
			mockAggregator.EXPECT().
				Aggregate(gomock.Any(), accounts).
				Return([]*domain.PortfolioRow{{Account: accounts[0]}}),
			// Segundo ciclo: as duas contas presentes
			mockAggregator.EXPECT().
				Aggregate(gomock.Any(), accounts).
				Return([]*domain.PortfolioRow{{Account: accounts[0]}, {Account: accounts[1]}}),
		)

		service.refreshPortfolio()
		assert.Len(t, service.State().Rows, 1)

		service.refreshPortfolio()
		assert.Len(t, service.State().Rows, 2)
		assert.Equal(t, uint64(2), service.State().Cycle)
	})

	t.Run("Erro ao listar contas - visão anterior permanece publicada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockAccountRepo, mockAggregator := newTestRefreshService(ctrl)

		accounts := []*domain.Account{{ID: "ACC001", Status: domain.AccountStatusConnected}}

		gomock.InOrder(
			mockAccountRepo.EXPECT().
				ListAccounts(gomock.Any()).
				Return(accounts, nil),
			mockAccountRepo.EXPECT().
				ListAccounts(gomock.Any()).
				Return(nil, assert.AnError),
		)
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), accounts).
			Return([]*domain.PortfolioRow{{Account: accounts[0]}})

		service.refreshPortfolio()
		first := service.State()

		service.refreshPortfolio()

		assert.Same(t, first, service.State())
	})
}

func TestPortfolioRefreshService_publish(t *testing.T) {
	t.Run("Resultado de ciclo obsoleto não sobrescreve ciclo mais novo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _ := newTestRefreshService(ctrl)

		newerRows := []*domain.PortfolioRow{{Account: &domain.Account{ID: "ACC001"}}}
		staleRows := []*domain.PortfolioRow{{Account: &domain.Account{ID: "ACC000"}}}

		service.publish(newerRows, 2)
		service.publish(staleRows, 1)

		state := service.State()
		require.NotNil(t, state)
		assert.Equal(t, uint64(2), state.Cycle)
		assert.Equal(t, "ACC001", state.Rows[0].Account.ID)
	})
}

func TestPortfolioRefreshService_reentrancy(t *testing.T) {
	t.Run("Ciclos simultâneos - apenas um executa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockAccountRepo, mockAggregator := newTestRefreshService(ctrl)

		release := make(chan struct{})
		accounts := []*domain.Account{{ID: "ACC001", Status: domain.AccountStatusConnected}}

		// Apenas o primeiro ciclo chega ao repositório; o segundo é ignorado
		// pelo guarda de reentrância
		mockAccountRepo.EXPECT().
			ListAccounts(gomock.Any()).
			DoAndReturn(func([]domain.AccountStatus) ([]*domain.Account, error) {
				<-release
				return accounts, nil
			})
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), accounts).
			Return([]*domain.PortfolioRow{})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.refreshPortfolio()
		}()

		// Espera o primeiro ciclo registrar que está em execução
		assert.Eventually(t, service.IsRefreshing, time.Second, 5*time.Millisecond)

		service.refreshPortfolio() // guarda de reentrância ignora

		close(release)
		wg.Wait()

		assert.Equal(t, uint64(1), service.State().Cycle)
	})
}

func TestPortfolioRefreshService_GetStatus(t *testing.T) {
	t.Run("Status consultado durante um ciclo em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockAccountRepo, mockAggregator := newTestRefreshService(ctrl)

		release := make(chan struct{})
		accounts := []*domain.Account{{ID: "ACC001", Status: domain.AccountStatusConnected}}

		mockAccountRepo.EXPECT().
			ListAccounts(gomock.Any()).
			DoAndReturn(func([]domain.AccountStatus) ([]*domain.Account, error) {
				<-release
				return accounts, nil
			})
		mockAggregator.EXPECT().
			Aggregate(gomock.Any(), accounts).
			Return([]*domain.PortfolioRow{{Account: accounts[0]}})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.refreshPortfolio()
		}()

		assert.Eventually(t, service.IsRefreshing, time.Second, 5*time.Millisecond)

		// Leitura concorrente ao ciclo: os carimbos de tempo são lidos sob o
		// mesmo mutex que o ciclo usa para escrevê-los
		status := service.GetStatus()
		assert.True(t, status["is_refreshing"].(bool))
		assert.False(t, status["last_refresh_started_at"].(time.Time).IsZero())
		assert.True(t, status["last_refresh_completed_at"].(time.Time).IsZero())

		close(release)
		wg.Wait()

		status = service.GetStatus()
		assert.False(t, status["is_refreshing"].(bool))
		assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
		assert.Equal(t, uint64(1), status["published_cycle"])
	})
}
