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
)

// RetentionCleanupConfig representa a configuração do agendador de limpeza de retenção
type RetentionCleanupConfig struct {
	CronSchedule   string
	SnapshotDays   int
	ProbeDays      int
	CleanupEnabled bool
}

// RetentionCleanupService remove snapshots diários e sondas de veiculação fora
// da janela de retenção configurada
type RetentionCleanupService struct {
	scheduler      *gocron.Scheduler
	config         RetentionCleanupConfig
	snapshotRepo   repository.SnapshotRepository
	probeRepo      repository.ProbeRepository
	cleanupRunning bool
	syncMutex      sync.Mutex
	lastRunAt      time.Time
}

// NewRetentionCleanupService cria uma nova instância do serviço de limpeza de retenção
func NewRetentionCleanupService(
	snapshotRepo repository.SnapshotRepository,
	probeRepo repository.ProbeRepository,
	appConfig *config.Config,
) *RetentionCleanupService {
	cleanupConfig := RetentionCleanupConfig{
		CronSchedule:   appConfig.Retention.CronSchedule,
		SnapshotDays:   appConfig.Retention.SnapshotDays,
		ProbeDays:      appConfig.Retention.ProbeDays,
		CleanupEnabled: appConfig.Retention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"snapshot_days":   cleanupConfig.SnapshotDays,
		"probe_days":      cleanupConfig.ProbeDays,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de retenção carregada")

	return &RetentionCleanupService{
		scheduler:    scheduler,
		config:       cleanupConfig,
		snapshotRepo: snapshotRepo,
		probeRepo:    probeRepo,
	}
}

// Start inicia o agendador
func (s *RetentionCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanup remove os registros fora da janela de retenção
func (s *RetentionCleanupService) cleanup() {
	s.syncMutex.Lock()
	if s.cleanupRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.cleanupRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	s.lastRunAt = startTime

	snapshotsRemoved, err := s.snapshotRepo.DeleteOlderThan(s.config.SnapshotDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots fora da janela de retenção")
	}

	probesRemoved, err := s.probeRepo.DeleteOlderThan(s.config.ProbeDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sondas fora da janela de retenção")
	}

	logrus.WithFields(logrus.Fields{
		"snapshots_removed": snapshotsRemoved,
		"probes_removed":    probesRemoved,
		"duration":          time.Since(startTime).String(),
	}).Info("Limpeza de retenção concluída")
}

// GetStatus retorna o status atual do agendador
func (s *RetentionCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled": s.config.CleanupEnabled,
		"cleanup_cron":    s.config.CronSchedule,
		"snapshot_days":   s.config.SnapshotDays,
		"probe_days":      s.config.ProbeDays,
		"last_run_at":     s.lastRunAt,
	}
}
