package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"go.uber.org/zap"
)

// AutoBackupKey ключ, под которым хранится последняя автоматическая копия
const AutoBackupKey = "mathtutor_backup_auto"

// Scheduler периодически сохраняет резервную копию агрегата рядом с основными данными
type Scheduler struct {
	tutor    *service.TutorService
	transfer *service.TransferService
	store    repository.BlobStore
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	now      func() time.Time
}

// NewScheduler создаёт новый планировщик
func NewScheduler(
	tutor *service.TutorService,
	transfer *service.TransferService,
	store repository.BlobStore,
	interval time.Duration,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		tutor:    tutor,
		transfer: transfer,
		store:    store,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
}

// Start запускает фоновые задачи. Нулевой интервал отключает автокопию.
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Auto backup disabled")
		return
	}

	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))
	go s.runBackupTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

func (s *Scheduler) runBackupTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Backup(ctx)
		case <-s.stopChan:
			s.logger.Info("Backup task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Backup task cancelled")
			return
		}
	}
}

// Backup сохраняет текущий снимок под AutoBackupKey
func (s *Scheduler) Backup(ctx context.Context) {
	_, body, err := s.transfer.ExportJSON(s.tutor.Snapshot(), s.now())
	if err != nil {
		s.logger.Error("Failed to build auto backup", zap.Error(err))
		return
	}

	if err := s.store.Put(ctx, AutoBackupKey, body); err != nil {
		s.logger.Error("Failed to store auto backup", zap.Error(err))
		return
	}

	s.logger.Info("Auto backup stored", zap.Int("bytes", len(body)))
}
