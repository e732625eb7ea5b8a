// Package scheduler contiene los servicios de agendado de tareas
// recurrentes de la aplicación.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Bigyayos/TiendaControl/internal/config"
	"github.com/Bigyayos/TiendaControl/internal/domain"
	"github.com/Bigyayos/TiendaControl/internal/usecases/objectives"
	"github.com/Bigyayos/TiendaControl/internal/usecases/reporting"
	"github.com/Bigyayos/TiendaControl/pkg/utils"
)

type DailyDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// DigestStatus es el estado observable del digest para el endpoint de
// consulta del cron.
type DigestStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cronSchedule"`
	Running         bool       `json:"running"`
	LastRunID       string     `json:"lastRunId,omitempty"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// DailyDigestService calcula cada mañana los agregados del dashboard y
// el avance de objetivos, y los deja en el log como resumen operativo
// del día anterior.
type DailyDigestService struct {
	scheduler       *gocron.Scheduler
	reporter        reporting.Reporter
	evaluator       objectives.Evaluator
	config          DailyDigestConfig
	digestRunning   bool
	digestMutex     sync.Mutex
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func NewDailyDigestService(
	reporter reporting.Reporter,
	evaluator objectives.Evaluator,
	cfg *config.Config,
) *DailyDigestService {
	digestConfig := DailyDigestConfig{
		CronSchedule: cfg.DailyDigest.CronSchedule, // Default: 7h todos los días
		Enabled:      cfg.DailyDigest.Enabled,      // Default: deshabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuración del agendador del digest diario cargada")

	return &DailyDigestService{
		scheduler: scheduler,
		reporter:  reporter,
		evaluator: evaluator,
		config:    digestConfig,
	}
}

func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron del digest diario deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron del digest diario")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Error en la ejecución del digest diario")
		}
	})
	if err != nil {
		return fmt.Errorf("error al agendar el digest diario: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron del digest diario")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync lanza el digest fuera de horario, en segundo plano.
func (s *DailyDigestService) TriggerManualSync() {
	go func() {
		if err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Error en la ejecución manual del digest diario")
		}
	}()
}

// Status devuelve el estado actual del digest.
func (s *DailyDigestService) Status() DigestStatus {
	s.digestMutex.Lock()
	defer s.digestMutex.Unlock()

	status := DigestStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.digestRunning,
		LastRunID:    s.lastRunID,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *DailyDigestService) RunDigest() error {
	s.digestMutex.Lock()
	if s.digestRunning {
		s.digestMutex.Unlock()
		logrus.Warn("El digest diario ya está en ejecución")
		return nil
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "sin-id"
	}

	s.digestRunning = true
	s.lastRunID = runID
	s.lastStartedAt = time.Now()
	s.digestMutex.Unlock()

	defer func() {
		s.digestMutex.Lock()
		s.digestRunning = false
		s.lastCompletedAt = time.Now()
		s.digestMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando digest diario")

	stats, err := s.reporter.DashboardStats()
	if err != nil {
		logger.WithError(err).Error("Error al calcular los agregados del dashboard")
		return err
	}

	logger.WithFields(logrus.Fields{
		"today_sales":      stats.TodaySales,
		"week_sales":       stats.WeekSales,
		"month_sales":      stats.MonthSales,
		"active_stores":    stats.ActiveStores,
		"active_employees": stats.ActiveEmployees,
	}).Info("Agregados del dashboard calculados")

	progress, err := s.evaluator.Progress(nil)
	if err != nil {
		logger.WithError(err).Error("Error al evaluar el avance de objetivos")
		return err
	}

	summary := summarizeProgress(progress)
	logger.WithFields(logrus.Fields{
		"objectives":  len(progress),
		"completed":   summary[domain.ObjectiveStatusCompleted],
		"in_progress": summary[domain.ObjectiveStatusInProgress],
		"pending":     summary[domain.ObjectiveStatusPending],
	}).Info("Digest diario completado")

	return nil
}

func summarizeProgress(progress []*domain.ObjectiveProgress) map[string]int {
	summary := make(map[string]int, 3)
	for _, item := range progress {
		summary[item.Status]++
	}
	return summary
}
