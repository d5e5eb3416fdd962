package monitoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adsmocks "github.com/vfg2006/account-health-api/infrastructure/integrator/ads/mocks"
	"github.com/vfg2006/account-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência dos testes: 15 de janeiro de 2024, 10h (dia 15 de 31)
var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func boolPtr(b bool) *bool {
	return &b
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSnapshotRepository, *mocks.MockProbeRepository, *adsmocks.MockAdsIntegrator) {
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockProbeRepo := mocks.NewMockProbeRepository(ctrl)
	mockAdsService := adsmocks.NewMockAdsIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.ServingProbe.ReconcileDelaySeconds = 0
	cfg.PortfolioRefresh.MaxConcurrentAccounts = 4

	service := &Service{
		cfg:          cfg,
		snapshotRepo: mockSnapshotRepo,
		probeRepo:    mockProbeRepo,
		adsService:   mockAdsService,
		memo:         make(map[string]*AccountHealth),
		now:          func() time.Time { return testNow },
	}

	return service, mockSnapshotRepo, mockProbeRepo, mockAdsService
}

func testAccount(id string) *domain.Account {
	return &domain.Account{
		ID:                 id,
		ExternalCustomerID: "123-456-" + id,
		Name:               "Conta " + id,
		MonthlyBudget:      decimal.NewFromInt(3100),
		Status:             domain.AccountStatusConnected,
	}
}

func TestServiceGetOrCreateSnapshot(t *testing.T) {
	t.Run("Snapshot do dia já existe - deve reutilizar sem criar outro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, _ := newTestService(ctrl)

		existing := &domain.DailySnapshot{ID: "SNAP001", AccountID: "ACC001"}
		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay("ACC001", testNow).
			Return(existing, nil)

		snapshot, err := service.GetOrCreateSnapshot("ACC001", testNow)

		require.NoError(t, err)
		assert.Same(t, existing, snapshot)
	})

	t.Run("Primeira verificação do dia - deve criar snapshot vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, _ := newTestService(ctrl)

		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay("ACC001", testNow).
			Return(nil, nil)

		var created *domain.DailySnapshot
		mockSnapshotRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(snapshot *domain.DailySnapshot) error {
				created = snapshot
				return nil
			})

		snapshot, err := service.GetOrCreateSnapshot("ACC001", testNow)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "ACC001", created.AccountID)
		assert.NotEmpty(t, created.ID)
		assert.Nil(t, snapshot.SpendToDate)
		assert.False(t, snapshot.KPIFetched)
		assert.False(t, snapshot.SpendAttempted())
	})

	t.Run("Falha ao criar snapshot - deve propagar o erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, _ := newTestService(ctrl)

		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay("ACC001", testNow).
			Return(nil, nil)
		mockSnapshotRepo.EXPECT().
			Create(gomock.Any()).
			Return(errors.New("conexão recusada"))

		snapshot, err := service.GetOrCreateSnapshot("ACC001", testNow)

		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestServiceEnsureSpendToDate(t *testing.T) {
	account := testAccount("ACC001")

	t.Run("Gasto já presente no snapshot - não deve chamar a API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, mockAdsService := newTestService(ctrl)

		fetched := testNow.Add(-2 * time.Hour)
		snapshot := &domain.DailySnapshot{
			ID:             "SNAP001",
			AccountID:      account.ID,
			SpendToDate:    decimalPtr(decimal.NewFromInt(500)),
			SpendFetchedAt: &fetched,
		}

		// Nenhuma expectativa em mockAdsService: qualquer chamada falha o teste
		_ = mockAdsService

		result, err := service.EnsureSpendToDate(account, snapshot)

		require.NoError(t, err)
		assert.Same(t, snapshot, result)
	})

	t.Run("Busca bem sucedida - deve persistir gasto e indicador de ritmo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, mockAdsService := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}

		// Orçamento 3100, dia 15 de 31: esperado 1500; gasto 1500 => no ritmo
		spend := decimal.NewFromInt(1500)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(&spend, nil)

		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", &spend, gomock.Any(), testNow).
			DoAndReturn(func(_ string, _ *decimal.Decimal, indicator *domain.PacingIndicator, _ time.Time) error {
				assert.Equal(t, domain.PacingOnPace, *indicator)
				return nil
			})

		result, err := service.EnsureSpendToDate(account, snapshot)

		require.NoError(t, err)
		require.NotNil(t, result.SpendToDate)
		assert.True(t, result.SpendToDate.Equal(spend))
		require.NotNil(t, result.PacingIndicator)
		assert.Equal(t, domain.PacingOnPace, *result.PacingIndicator)
		require.NotNil(t, result.SpendFetchedAt)
		assert.True(t, result.HasSpend())
	})

	t.Run("Falha na API - deve registrar desconhecido explícito e propagar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, mockAdsService := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}

		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(nil, errors.New("timeout na API de anúncios"))

		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", nil, nil, testNow).
			Return(nil)

		result, err := service.EnsureSpendToDate(account, snapshot)

		assert.Error(t, err)
		require.NotNil(t, result)
		assert.Nil(t, result.SpendToDate)
		assert.Nil(t, result.PacingIndicator)
		// Tentativa registrada sem valor: a próxima passada busca de novo
		assert.True(t, result.SpendAttempted())
		assert.False(t, result.HasSpend())
	})

	t.Run("Plataforma sem dados - deve registrar desconhecido sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, mockAdsService := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}

		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(nil, nil)

		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", nil, nil, testNow).
			Return(nil)

		result, err := service.EnsureSpendToDate(account, snapshot)

		require.NoError(t, err)
		assert.Nil(t, result.SpendToDate)
		assert.True(t, result.SpendAttempted())
	})
}

func TestServiceEnsureServingStatus(t *testing.T) {
	account := testAccount("ACC001")
	ctx := context.Background()

	t.Run("Sonda da hora corrente já existe - deve reutilizar sem novo gatilho", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockProbeRepo, _ := newTestService(ctrl)

		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(&domain.ServingProbe{ID: "PRB001", AccountID: account.ID, IsServing: true}, nil)

		result := service.EnsureServingStatus(ctx, account)

		require.NotNil(t, result)
		assert.True(t, *result)
	})

	t.Run("Sem sonda - deve disparar gatilho e reconciliar com a gravação externa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockProbeRepo, mockAdsService := newTestService(ctrl)

		gomock.InOrder(
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(nil, nil),
			mockAdsService.EXPECT().
				TriggerServingStatus(account.ID).
				Return(nil),
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(&domain.ServingProbe{ID: "PRB001", AccountID: account.ID, IsServing: false}, nil),
		)

		result := service.EnsureServingStatus(ctx, account)

		require.NotNil(t, result)
		assert.False(t, *result)
	})

	t.Run("Gravação externa atrasada - deve tentar mais uma vez após o atraso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockProbeRepo, mockAdsService := newTestService(ctrl)

		gomock.InOrder(
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(nil, nil),
			mockAdsService.EXPECT().
				TriggerServingStatus(account.ID).
				Return(nil),
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(nil, nil),
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(&domain.ServingProbe{ID: "PRB001", AccountID: account.ID, IsServing: true}, nil),
		)

		result := service.EnsureServingStatus(ctx, account)

		require.NotNil(t, result)
		assert.True(t, *result)
	})

	t.Run("Status nunca aparece - deve devolver nulo (verificando) sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockProbeRepo, mockAdsService := newTestService(ctrl)

		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(nil, nil).
			Times(3)
		mockAdsService.EXPECT().
			TriggerServingStatus(account.ID).
			Return(nil)

		result := service.EnsureServingStatus(ctx, account)

		assert.Nil(t, result)
	})

	t.Run("Falha no gatilho - deve devolver nulo sem propagar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, mockProbeRepo, mockAdsService := newTestService(ctrl)

		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(nil, nil)
		mockAdsService.EXPECT().
			TriggerServingStatus(account.ID).
			Return(errors.New("serviço indisponível"))

		result := service.EnsureServingStatus(ctx, account)

		assert.Nil(t, result)
	})
}

func TestServiceEnsureKPIs(t *testing.T) {
	account := testAccount("ACC001")

	t.Run("KPIs já buscados no dia - não deve chamar a API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID, KPIFetched: true}

		err := service.EnsureKPIs(account, snapshot)

		assert.NoError(t, err)
	})

	t.Run("Busca bem sucedida - deve persistir o pacote e marcar a flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, mockAdsService := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID, KPIs: make(domain.KPIBag)}

		bag := domain.KPIBag{
			"cpc": {7: 1.25, 30: 1.10, 90: 0.98},
			"ctr": {7: 0.031, 30: 0.028, 90: 0.026},
		}
		mockAdsService.EXPECT().
			GetKPIBundle(account).
			Return(bag, nil)
		mockSnapshotRepo.EXPECT().
			UpdateKPIs("SNAP001", gomock.Any()).
			Return(nil)

		err := service.EnsureKPIs(account, snapshot)

		require.NoError(t, err)
		assert.True(t, snapshot.KPIFetched)
		assert.Equal(t, 1.25, snapshot.KPIs["cpc"][7])
	})

	t.Run("Falha na API - flag permanece falsa para nova tentativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, mockAdsService := newTestService(ctrl)

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}

		mockAdsService.EXPECT().
			GetKPIBundle(account).
			Return(nil, errors.New("timeout"))

		err := service.EnsureKPIs(account, snapshot)

		assert.Error(t, err)
		assert.False(t, snapshot.KPIFetched)
	})
}

func TestServiceCheckAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Sequência completa na primeira invocação do dia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, mockProbeRepo, mockAdsService := newTestService(ctrl)
		account := testAccount("ACC001")

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}
		spend := decimal.NewFromInt(1500)

		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay(account.ID, testNow).
			Return(snapshot, nil)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(&spend, nil)
		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", &spend, gomock.Any(), testNow).
			Return(nil)
		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(&domain.ServingProbe{AccountID: account.ID, IsServing: true}, nil)
		mockAdsService.EXPECT().
			GetKPIBundle(account).
			Return(domain.KPIBag{"cpc": {7: 1.0}}, nil)
		mockSnapshotRepo.EXPECT().
			UpdateKPIs("SNAP001", gomock.Any()).
			Return(nil)

		health, err := service.CheckAccount(ctx, account)

		require.NoError(t, err)
		assert.Same(t, account, health.Account)
		assert.True(t, health.Snapshot.HasSpend())
		require.NotNil(t, health.IsServing)
		assert.True(t, *health.IsServing)
	})

	t.Run("Reinvocação no mesmo dia com tudo completo - deve reexecutar apenas a sonda de veiculação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, mockProbeRepo, mockAdsService := newTestService(ctrl)
		account := testAccount("ACC001")

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}
		spend := decimal.NewFromInt(1500)

		// Primeira invocação: sequência completa
		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay(account.ID, testNow).
			Return(snapshot, nil)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(&spend, nil)
		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", &spend, gomock.Any(), testNow).
			Return(nil)
		mockAdsService.EXPECT().
			GetKPIBundle(account).
			Return(domain.KPIBag{}, nil)
		mockSnapshotRepo.EXPECT().
			UpdateKPIs("SNAP001", gomock.Any()).
			Return(nil)

		// Sonda consultada nas duas invocações, com status mudando entre elas
		gomock.InOrder(
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(&domain.ServingProbe{AccountID: account.ID, IsServing: true}, nil),
			mockProbeRepo.EXPECT().
				GetByAccountIDAndHour(account.ID, testNow).
				Return(&domain.ServingProbe{AccountID: account.ID, IsServing: false}, nil),
		)

		first, err := service.CheckAccount(ctx, account)
		require.NoError(t, err)
		assert.True(t, *first.IsServing)

		second, err := service.CheckAccount(ctx, account)
		require.NoError(t, err)
		assert.Same(t, first.Snapshot, second.Snapshot)
		assert.False(t, *second.IsServing)
	})

	t.Run("Falha nos KPIs na primeira invocação - reinvocação no mesmo dia deve tentar de novo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, mockProbeRepo, mockAdsService := newTestService(ctrl)
		account := testAccount("ACC001")

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}
		spend := decimal.NewFromInt(1500)

		// O snapshot e o gasto são resolvidos uma única vez no dia
		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay(account.ID, testNow).
			Return(snapshot, nil)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(&spend, nil)
		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", &spend, gomock.Any(), testNow).
			Return(nil)
		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(&domain.ServingProbe{AccountID: account.ID, IsServing: true}, nil).
			Times(2)

		// KPIs falham na primeira passada e a flag fica falsa, então a
		// segunda passada precisa repetir a busca
		gomock.InOrder(
			mockAdsService.EXPECT().
				GetKPIBundle(account).
				Return(nil, errors.New("timeout")),
			mockAdsService.EXPECT().
				GetKPIBundle(account).
				Return(domain.KPIBag{"cpc": {7: 1.0}}, nil),
		)
		mockSnapshotRepo.EXPECT().
			UpdateKPIs("SNAP001", gomock.Any()).
			Return(nil)

		first, err := service.CheckAccount(ctx, account)
		require.NoError(t, err)
		assert.False(t, first.Snapshot.KPIFetched)

		second, err := service.CheckAccount(ctx, account)
		require.NoError(t, err)
		assert.True(t, second.Snapshot.KPIFetched)
	})

	t.Run("Falha na busca de gasto - deve propagar para o chamador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, _, mockAdsService := newTestService(ctrl)
		account := testAccount("ACC001")

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}

		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay(account.ID, testNow).
			Return(snapshot, nil)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(nil, errors.New("timeout"))
		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", nil, nil, testNow).
			Return(nil)

		health, err := service.CheckAccount(ctx, account)

		assert.Error(t, err)
		assert.Nil(t, health)
	})

	t.Run("Falha nos KPIs não é fatal para a verificação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, mockSnapshotRepo, mockProbeRepo, mockAdsService := newTestService(ctrl)
		account := testAccount("ACC001")

		snapshot := &domain.DailySnapshot{ID: "SNAP001", AccountID: account.ID}
		spend := decimal.NewFromInt(100)

		mockSnapshotRepo.EXPECT().
			GetByAccountIDAndDay(account.ID, testNow).
			Return(snapshot, nil)
		mockAdsService.EXPECT().
			GetSpendToDate(account).
			Return(&spend, nil)
		mockSnapshotRepo.EXPECT().
			UpdateSpend("SNAP001", &spend, gomock.Any(), testNow).
			Return(nil)
		mockProbeRepo.EXPECT().
			GetByAccountIDAndHour(account.ID, testNow).
			Return(nil, errors.New("conexão recusada"))
		mockAdsService.EXPECT().
			GetKPIBundle(account).
			Return(nil, errors.New("timeout"))

		health, err := service.CheckAccount(ctx, account)

		require.NoError(t, err)
		assert.Nil(t, health.IsServing)
		assert.False(t, health.Snapshot.KPIFetched)
	})
}
