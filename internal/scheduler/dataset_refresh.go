package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Reloader reconstrói o snapshot do dataset
type Reloader interface {
	Reload(ctx context.Context) (domain.DatasetStatus, error)
}

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetRefreshService recarrega periodicamente o dataset de vendas
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	reloader            Reloader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga do dataset
func NewDatasetRefreshService(reloader Reloader, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		SyncEnabled:  appConfig.DatasetRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"dataset_refresh_cron":    refreshConfig.CronSchedule,
		"dataset_refresh_enabled": refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	log.L.WithField("dataset_refresh_cron", s.config.CronSchedule).Info("Agendador de recarga do dataset iniciado")

	return nil
}

// refresh executa uma recarga; uma segunda chamada durante a execução é ignorada
func (s *DatasetRefreshService) refresh(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	status, err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastSyncError = err.Error()
		log.L.WithError(err).Error("Erro na recarga agendada do dataset")
		return
	}

	s.lastSyncError = ""
	log.L.WithFields(log.Fields{
		"records":  status.Records,
		"rejected": status.RejectedCount,
		"source":   status.Source,
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync dispara uma recarga em segundo plano
func (s *DatasetRefreshService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando recarga manual do dataset")
	go s.refresh(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
