// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/medgm/analytics-api/internal/config"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type BalanceSnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// BalanceSnapshotSyncService salva o saldo final dos meses fechados, que vira a base do carry-forward
type BalanceSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	statementService    statements.StatementService
	clock               utils.Clock
	config              BalanceSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewBalanceSnapshotSyncService(
	statementService statements.StatementService,
	clock utils.Clock,
	cfg *config.Config,
) *BalanceSnapshotSyncService {
	syncConfig := BalanceSnapshotSyncConfig{
		CronSchedule:  cfg.BalanceSnapshotSync.CronSchedule,  // Default: dia 1 às 2h da manhã
		SyncEnabled:   cfg.BalanceSnapshotSync.Enabled,       // Default: desabilitado
		MonthLookBack: cfg.BalanceSnapshotSync.MonthLookBack, // Default: 1 mês
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshot de saldos carregada")

	return &BalanceSnapshotSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		statementService: statementService,
		clock:            clock,
		config:           syncConfig,
	}
}

func (s *BalanceSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshot de saldos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de saldos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.SnapshotBalances(ctx); err != nil {
			logrus.WithError(err).Error("Erro no snapshot de saldos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de saldos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de saldos")
		s.scheduler.Stop()
	}()

	return nil
}

// SnapshotBalances salva os meses fechados do mais antigo para o mais recente,
// assim cada mês já parte do snapshot do anterior. Para no primeiro erro.
func (s *BalanceSnapshotSyncService) SnapshotBalances(ctx context.Context) ([]domain.PriorBalance, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot de saldos já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	var syncErr error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.clock.Now()
		s.lastSyncError = ""
		if syncErr != nil {
			s.lastSyncError = syncErr.Error()
		}
		s.syncMutex.Unlock()
	}()

	periods := s.closedPeriods()
	logrus.WithField("periods", len(periods)).Info("Iniciando snapshot de saldos")

	saved := make([]domain.PriorBalance, 0, len(periods))
	for _, period := range periods {
		balance, err := s.statementService.SnapshotClosingBalance(ctx, period)
		if err != nil {
			syncErr = fmt.Errorf("snapshot de %s: %w", period.String(), err)
			return saved, syncErr
		}
		saved = append(saved, *balance)
	}

	logrus.WithField("periods", len(saved)).Info("Snapshot de saldos concluído")

	return saved, nil
}

// closedPeriods retorna os MonthLookBack meses anteriores ao mês atual, do mais antigo ao mais recente
func (s *BalanceSnapshotSyncService) closedPeriods() []domain.Period {
	lookBack := s.config.MonthLookBack
	if lookBack < 1 {
		lookBack = 1
	}

	periods := make([]domain.Period, lookBack)
	period := domain.PeriodOf(s.clock.Now())
	for i := lookBack - 1; i >= 0; i-- {
		period = period.Previous()
		periods[i] = period
	}
	return periods
}

// TriggerManualSync inicia manualmente o snapshot de saldos
func (s *BalanceSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de saldos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de saldos")
	go func() {
		if _, err := s.SnapshotBalances(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual de saldos")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *BalanceSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
