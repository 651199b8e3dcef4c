package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytfetch/internal/app"
	"ytfetch/internal/app/models"
	"ytfetch/internal/utils/logger"
)

// progressWriter moves byte-count events from the extraction pipeline into
// the task record without ever blocking the pipeline. Send overwrites the
// last unpersisted event (updates carry absolute values, so dropping stale
// ones is safe); a single drain goroutine performs the durable writes.
type progressWriter struct {
	tasks  app.TaskRepository
	taskID uuid.UUID
	itemID uuid.UUID

	mu      sync.Mutex
	latest  models.Progress
	pending bool

	notify chan struct{}
	quit   chan struct{}
	done   chan struct{}
}

func newProgressWriter(ctx context.Context, tasks app.TaskRepository, taskID, itemID uuid.UUID) *progressWriter {
	w := &progressWriter{
		tasks:  tasks,
		taskID: taskID,
		itemID: itemID,
		notify: make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run(ctx)
	return w
}

// Send records the event and returns immediately. Safe to call at high
// frequency from the pipeline's hook goroutine.
func (w *progressWriter) Send(p models.Progress) {
	w.mu.Lock()
	w.latest = p
	w.pending = true
	w.mu.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Close flushes the last event and stops the drain goroutine. No writes
// happen after Close returns.
func (w *progressWriter) Close() {
	close(w.quit)
	<-w.done
}

func (w *progressWriter) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-w.quit:
			w.flush(ctx)
			return
		case <-w.notify:
			w.flush(ctx)
		}
	}
}

func (w *progressWriter) flush(ctx context.Context) {
	const funcName = "progressWriter.flush"

	w.mu.Lock()
	if !w.pending {
		w.mu.Unlock()
		return
	}
	p := w.latest
	w.pending = false
	w.mu.Unlock()

	if err := w.tasks.SetTaskDownloadedBytes(ctx, w.taskID, p.DownloadedBytes); err != nil {
		logger.Warn("failed to persist downloaded bytes",
			zap.String("function", funcName),
			zap.String("task_id", w.taskID.String()),
			zap.Error(err),
		)
	}
	if err := w.tasks.SetItemTotalBytes(ctx, w.itemID, p.TotalBytes); err != nil {
		logger.Warn("failed to persist total bytes",
			zap.String("function", funcName),
			zap.String("item_id", w.itemID.String()),
			zap.Error(err),
		)
	}
}
