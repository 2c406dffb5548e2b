// Package scheduler contém os serviços de agendamento para geração de snapshots
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vhgravatas/pos-analytics-api/infrastructure/repository"
	"github.com/vhgravatas/pos-analytics-api/internal/config"
	"github.com/vhgravatas/pos-analytics-api/internal/domain"
	"github.com/vhgravatas/pos-analytics-api/internal/usecases/reporting"
	"github.com/vhgravatas/pos-analytics-api/pkg/utils"
)

type ReportSnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// ReportSnapshotSyncService gera diariamente um snapshot do relatório
// gerencial e o persiste para consulta histórica. Um snapshot por dia de
// referência; rodadas repetidas no mesmo dia sobrescrevem o anterior.
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	renderer            reporting.ReportRenderer
	config              ReportSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	renderer reporting.ReportRenderer,
	cfg *config.Config,
) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:  cfg.ReportSnapshotSync.CronSchedule,  // Default: 6h da manhã todos os dias
		SyncEnabled:   cfg.ReportSnapshotSync.Enabled,       // Default: desabilitado
		RetentionDays: cfg.ReportSnapshotSync.RetentionDays, // Default: 90 dias
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
	}).Info("Configuração do agendador de snapshots de relatório carregada")

	return &ReportSnapshotSyncService{
		scheduler:    scheduler,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		renderer:     renderer,
		config:       syncConfig,
	}
}

func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de relatório")

	// Agendar a geração diária do snapshot
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncReportSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na geração do snapshot de relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de snapshots de relatório: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncReportSnapshot compõe o relatório gerencial do momento e persiste o
// snapshot do dia de referência, descartando snapshots fora da retenção
func (s *ReportSnapshotSyncService) SyncReportSnapshot() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Geração de snapshot de relatório já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando geração do snapshot de relatório")

	ctx := context.Background()

	report, err := s.reporter.GenerateManagementReport(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao compor relatório gerencial para o snapshot")
		return err
	}

	logrus.Debug("Relatório composto para o snapshot: ", utils.PrettyJson(report))

	snapshot, err := s.buildSnapshot(report)
	if err != nil {
		return err
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot de relatório")
		return err
	}

	if s.renderer != nil {
		if err := s.renderer.Render(report); err != nil {
			// Falha na renderização não invalida o snapshot persistido
			logrus.WithError(err).Warn("Erro ao renderizar relatório do snapshot")
		}
	}

	s.pruneOldSnapshots(ctx)

	logrus.WithFields(logrus.Fields{
		"snapshot_id":    snapshot.ID,
		"reference_date": snapshot.ReferenceDate.Format(time.DateOnly),
	}).Info("Geração do snapshot de relatório concluída")

	return nil
}

func (s *ReportSnapshotSyncService) buildSnapshot(report *domain.ManagementReport) (*domain.ReportSnapshot, error) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador do snapshot")
		return nil, fmt.Errorf("erro ao gerar identificador do snapshot: %w", err)
	}

	referenceDate := report.GeneratedAt
	if referenceDate.IsZero() {
		referenceDate = time.Now()
	}

	return &domain.ReportSnapshot{
		ID:            id,
		ReferenceDate: referenceDate,
		Report:        report,
	}, nil
}

func (s *ReportSnapshotSyncService) pruneOldSnapshots(ctx context.Context) {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao descartar snapshots fora da retenção")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots fora da retenção descartados")
	}
}

// TriggerManualSync inicia manualmente uma geração de snapshot de relatório
func (s *ReportSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshot já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de snapshot de relatório")
	go s.SyncReportSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
