package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/account-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/account-health-api/infrastructure/integrator/ads"
	"github.com/vfg2006/account-health-api/infrastructure/integrator/ads/adsclient"
	"github.com/vfg2006/account-health-api/infrastructure/repository"
	"github.com/vfg2006/account-health-api/internal/api"
	"github.com/vfg2006/account-health-api/internal/config"
	"github.com/vfg2006/account-health-api/internal/scheduler"
	"github.com/vfg2006/account-health-api/internal/usecases/account"
	"github.com/vfg2006/account-health-api/internal/usecases/alerting"
	"github.com/vfg2006/account-health-api/internal/usecases/authenticating"
	"github.com/vfg2006/account-health-api/internal/usecases/monitoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	probeRepo := repository.NewProbeRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := ads.New(cfg, adsClient)

	accountService := account.NewService(accountRepo, adsIntegrator, cfg)
	alertService := alerting.NewService(alertRepo)

	monitoringService := monitoring.NewService(cfg, snapshotRepo, probeRepo, adsIntegrator)
	aggregator := monitoring.NewAggregator(monitoringService, alertRepo, cfg)

	// Inicializa os agendadores
	refreshService := scheduler.NewPortfolioRefreshService(accountRepo, aggregator, cfg)
	retentionService := scheduler.NewRetentionCleanupService(snapshotRepo, probeRepo, cfg)

	// Inicia os agendadores em background
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do portfólio")
	} else {
		logrus.Info("Agendador de atualização do portfólio iniciado com sucesso")
	}

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de retenção")
	} else {
		logrus.Info("Agendador de limpeza de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		alertService,
		monitoringService,
		authenticator,
		refreshService,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
