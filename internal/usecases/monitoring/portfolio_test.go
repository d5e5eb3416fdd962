package monitoring_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/account-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
	"github.com/vfg2006/account-health-api/internal/usecases/monitoring"
	monitoringmocks "github.com/vfg2006/account-health-api/internal/usecases/monitoring/mocks"
	"go.uber.org/mock/gomock"
)

func newTestAggregator(ctrl *gomock.Controller, maxConcurrent int) (*monitoring.Aggregator, *monitoringmocks.MockHealthChecker, *mocks.MockAlertRepository) {
	mockChecker := monitoringmocks.NewMockHealthChecker(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	cfg := &config.Config{}
	cfg.PortfolioRefresh.MaxConcurrentAccounts = maxConcurrent

	return monitoring.NewAggregator(mockChecker, mockAlertRepo, cfg), mockChecker, mockAlertRepo
}

func portfolioAccount(i int) *domain.Account {
	return &domain.Account{
		ID:            fmt.Sprintf("ACC%03d", i),
		Name:          fmt.Sprintf("Conta %d", i),
		MonthlyBudget: decimal.NewFromInt(3000),
		Status:        domain.AccountStatusConnected,
	}
}

func healthFor(account *domain.Account, spend int64) *monitoring.AccountHealth {
	value := decimal.NewFromInt(spend)
	serving := true
	return &monitoring.AccountHealth{
		Account: account,
		Snapshot: &domain.DailySnapshot{
			ID:          "SNAP-" + account.ID,
			AccountID:   account.ID,
			SpendToDate: &value,
		},
		IsServing: &serving,
	}
}

func TestAggregatorAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("Todas as contas processadas - uma linha por conta na ordem de entrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator, mockChecker, mockAlertRepo := newTestAggregator(ctrl, 4)

		accounts := make([]*domain.Account, 6)
		for i := range accounts {
			account := portfolioAccount(i)
			accounts[i] = account

			// Atrasos decrescentes: as últimas contas terminam primeiro
			delay := time.Duration(5-i) * 5 * time.Millisecond
			mockChecker.EXPECT().
				CheckAccount(gomock.Any(), account).
				DoAndReturn(func(context.Context, *domain.Account) (*monitoring.AccountHealth, error) {
					time.Sleep(delay)
					return healthFor(account, 100), nil
				})
			mockAlertRepo.EXPECT().
				CountByAccountID(account.ID).
				Return(domain.AlertCounts{Critical: 1}, nil)
		}

		rows := aggregator.Aggregate(ctx, accounts)

		require.Len(t, rows, 6)
		for i, row := range rows {
			assert.Equal(t, accounts[i].ID, row.Account.ID)
			assert.Equal(t, 1, row.AlertCounts.Critical)
			require.NotNil(t, row.Progress)
		}
	})

	t.Run("Falha em uma conta - demais linhas preservadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator, mockChecker, mockAlertRepo := newTestAggregator(ctrl, 4)

		accounts := []*domain.Account{portfolioAccount(0), portfolioAccount(1), portfolioAccount(2)}

		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[0]).
			Return(healthFor(accounts[0], 100), nil)
		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[1]).
			Return(nil, errors.New("timeout na API de anúncios"))
		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[2]).
			Return(healthFor(accounts[2], 200), nil)

		mockAlertRepo.EXPECT().CountByAccountID(accounts[0].ID).Return(domain.AlertCounts{}, nil)
		mockAlertRepo.EXPECT().CountByAccountID(accounts[2].ID).Return(domain.AlertCounts{}, nil)

		rows := aggregator.Aggregate(ctx, accounts)

		require.Len(t, rows, 2)
		assert.Equal(t, accounts[0].ID, rows[0].Account.ID)
		assert.Equal(t, accounts[2].ID, rows[1].Account.ID)
	})

	t.Run("Pânico ao processar uma conta - não derruba a passada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator, mockChecker, mockAlertRepo := newTestAggregator(ctrl, 2)

		accounts := []*domain.Account{portfolioAccount(0), portfolioAccount(1)}

		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[0]).
			DoAndReturn(func(context.Context, *domain.Account) (*monitoring.AccountHealth, error) {
				panic("estado inesperado")
			})
		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[1]).
			Return(healthFor(accounts[1], 100), nil)
		mockAlertRepo.EXPECT().
			CountByAccountID(accounts[1].ID).
			Return(domain.AlertCounts{Medium: 2}, nil)

		rows := aggregator.Aggregate(ctx, accounts)

		require.Len(t, rows, 1)
		assert.Equal(t, accounts[1].ID, rows[0].Account.ID)
		assert.Equal(t, 2, rows[0].AlertCounts.Medium)
	})

	t.Run("Falha ao contar alertas - conta excluída da passada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator, mockChecker, mockAlertRepo := newTestAggregator(ctrl, 2)

		accounts := []*domain.Account{portfolioAccount(0)}

		mockChecker.EXPECT().
			CheckAccount(gomock.Any(), accounts[0]).
			Return(healthFor(accounts[0], 100), nil)
		mockAlertRepo.EXPECT().
			CountByAccountID(accounts[0].ID).
			Return(domain.AlertCounts{}, errors.New("conexão recusada"))

		rows := aggregator.Aggregate(ctx, accounts)

		assert.Empty(t, rows)
	})

	t.Run("Portfólio vazio - deve devolver lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator, _, _ := newTestAggregator(ctrl, 2)

		rows := aggregator.Aggregate(ctx, nil)

		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
