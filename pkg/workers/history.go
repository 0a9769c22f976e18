package workers

import (
	"context"

	"github.com/cbodonnell/minesweeper/pkg/log"
	"github.com/cbodonnell/minesweeper/pkg/repositories"
	"github.com/cbodonnell/minesweeper/pkg/repositories/models"
)

// HistoryRecord is a single write for the history repository. Exactly one
// of Join and Notice is set.
type HistoryRecord struct {
	Join   *models.Join
	Notice *models.Notice
}

type HistoryWorker struct {
	repository repositories.Repository
	recordChan <-chan HistoryRecord
	logger     *log.Logger
}

type NewHistoryWorkerOptions struct {
	Repository repositories.Repository
	RecordChan <-chan HistoryRecord
	Logger     *log.Logger
}

// NewHistoryWorker creates a new HistoryWorker.
// The worker takes repository writes off the session loop.
func NewHistoryWorker(opts NewHistoryWorkerOptions) *HistoryWorker {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &HistoryWorker{
		repository: opts.Repository,
		recordChan: opts.RecordChan,
		logger:     logger,
	}
}

// Start writes records until the record channel is closed. Records queued
// before the close are still written.
func (w *HistoryWorker) Start(ctx context.Context) {
	for record := range w.recordChan {
		w.save(ctx, record)
	}
}

func (w *HistoryWorker) save(ctx context.Context, record HistoryRecord) {
	switch {
	case record.Join != nil:
		if err := w.repository.RecordJoin(ctx, record.Join); err != nil {
			w.logger.Error("Failed to record join: %v", err)
		}
	case record.Notice != nil:
		if err := w.repository.RecordNotice(ctx, record.Notice); err != nil {
			w.logger.Error("Failed to record notice: %v", err)
		}
	default:
		w.logger.Warn("Ignoring empty history record")
	}
}
