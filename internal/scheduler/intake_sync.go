// Package scheduler contém os serviços de agendamento para execução recorrente do intake
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/lumenaura/order-manager-api/internal/config"
	"github.com/lumenaura/order-manager-api/internal/usecases/intake"
)

// IntakeSyncConfig representa a configuração do agendador do intake de pedidos
type IntakeSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// IntakeSyncService gerencia o agendamento e execução recorrente do pipeline de intake
type IntakeSyncService struct {
	scheduler           *gocron.Scheduler
	config              IntakeSyncConfig
	pipeline            intake.IntakePipeline
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewIntakeSyncService cria uma nova instância do serviço de sincronização do intake
func NewIntakeSyncService(pipeline intake.IntakePipeline, appConfig *config.Config) *IntakeSyncService {
	syncConfig := IntakeSyncConfig{
		CronSchedule: appConfig.IntakeSync.CronSchedule,
		SyncEnabled:  appConfig.IntakeSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do intake de pedidos carregada")

	return &IntakeSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		pipeline:    pipeline,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *IntakeSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Execução recorrente do intake de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do intake de pedidos")

	// Agendar a execução recorrente do pipeline
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIntakeBatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução do intake de pedidos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do intake de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// runIntakeBatch executa um lote completo do pipeline de intake
func (s *IntakeSyncService) runIntakeBatch(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Lote de intake já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
		s.lastSyncCompletedAt = time.Now()
	}()

	metrics, err := s.pipeline.RunOnce(ctx)
	if err != nil {
		if errors.Is(err, intake.ErrRunAlreadyInProgress) {
			logrus.Warn("Pipeline de intake ocupado, lote agendado ignorado")
			return
		}
		logrus.WithError(err).Error("Erro na execução agendada do intake de pedidos")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":        duration.String(),
		"processed_count": metrics.ProcessedCount,
		"held_count":      metrics.HeldCount,
	}).Info("Lote agendado do intake de pedidos concluído")
}

// TriggerManualSync inicia manualmente um lote do intake de pedidos
func (s *IntakeSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Lote de intake já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando lote manual do intake de pedidos")
	go s.runIntakeBatch(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IntakeSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_started_at":    s.pipeline.LastRunStartedAt(),
		"last_run_completed_at":  s.pipeline.LastRunCompletedAt(),
	}
}
