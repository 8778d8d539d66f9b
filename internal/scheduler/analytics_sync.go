package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-hub-api/internal/config"
	"github.com/vfg2006/influencer-hub-api/internal/domain"
	"github.com/vfg2006/influencer-hub-api/internal/usecases/syncing"
)

// AnalyticsSyncService agenda a varredura em massa de refresh de analytics.
// A varredura em si é sequencial dentro do orquestrador; aqui só garantimos
// que duas varreduras não rodem ao mesmo tempo no processo.
type AnalyticsSyncService struct {
	scheduler         *gocron.Scheduler
	cfg               *config.Config
	syncer            syncing.Syncer
	syncRunning       bool
	syncMutex         sync.Mutex
	lastSweepStarted  time.Time
	lastSweepFinished time.Time
	lastSweepResult   *domain.BulkRefreshResult
}

func NewAnalyticsSyncService(syncer syncing.Syncer, cfg *config.Config) *AnalyticsSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cfg.AnalyticsSync.CronSchedule,
		"request_delay_seconds": cfg.AnalyticsSync.RequestDelaySeconds,
		"snapshot_ttl_days":     cfg.AnalyticsSync.SnapshotTTLDays,
		"sync_enabled":          cfg.AnalyticsSync.Enabled,
	}).Info("Configuração do agendador de sincronização de analytics carregada")

	return &AnalyticsSyncService{
		scheduler:   scheduler,
		cfg:         cfg,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.cfg.AnalyticsSync.Enabled {
		logrus.Info("Sincronização agendada de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.AnalyticsSync.CronSchedule).Info("Iniciando agendador de sincronização de analytics")

	_, err := s.scheduler.Cron(s.cfg.AnalyticsSync.CronSchedule).Do(func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de analytics: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep executa a varredura em massa, descartando gatilhos sobrepostos.
// Uma varredura já iniciada roda até o fim da lista de alvos enumerada.
func (s *AnalyticsSyncService) runSweep() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de analytics já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSweepStarted = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de analytics para todos os perfis elegíveis")

	result, err := s.syncer.RefreshAllEligible(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar varredura de analytics")
		return
	}

	s.lastSweepFinished = time.Now()
	s.lastSweepResult = result

	logrus.WithFields(logrus.Fields{
		"sweep_id":        result.SweepID,
		"total_processed": result.TotalProcessed,
		"success_count":   result.SuccessCount,
		"error_count":     result.ErrorCount,
		"duration":        s.lastSweepFinished.Sub(s.lastSweepStarted).String(),
	}).Info("Varredura de analytics concluída")
}

// TriggerManualSync inicia manualmente uma varredura de analytics
func (s *AnalyticsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de analytics já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de analytics")
	go s.runSweep()
}

// GetStatus retorna o status atual do agendador
func (s *AnalyticsSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":            s.cfg.AnalyticsSync.Enabled,
		"sync_cron":               s.cfg.AnalyticsSync.CronSchedule,
		"sync_request_delay_s":    s.cfg.AnalyticsSync.RequestDelaySeconds,
		"snapshot_ttl_days":       s.cfg.AnalyticsSync.SnapshotTTLDays,
		"last_sweep_started_at":   s.lastSweepStarted,
		"last_sweep_completed_at": s.lastSweepFinished,
	}

	if s.lastSweepResult != nil {
		status["last_sweep_id"] = s.lastSweepResult.SweepID
		status["last_sweep_total_processed"] = s.lastSweepResult.TotalProcessed
		status["last_sweep_success_count"] = s.lastSweepResult.SuccessCount
		status["last_sweep_error_count"] = s.lastSweepResult.ErrorCount
	}

	return status
}
