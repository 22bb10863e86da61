package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/model"
)

// AutosaveScheduler coalesces rapid edits into a single save per project.
// Every edit cancels the project's pending save and reschedules it after
// the debounce delay; at most one save is pending per project at a time.
type AutosaveScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	pending map[string]model.Project
	save    func(ctx context.Context, p model.Project) error
	logger  *zap.Logger
}

func NewAutosaveScheduler(delay time.Duration, save func(ctx context.Context, p model.Project) error, logger *zap.Logger) *AutosaveScheduler {
	return &AutosaveScheduler{
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]model.Project),
		save:    save,
		logger:  logger,
	}
}

// Schedule queues a save of the given snapshot, replacing any pending save
// for the same project. The latest snapshot wins.
func (a *AutosaveScheduler) Schedule(p model.Project) {
	if p.ID == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[p.ID]; ok {
		t.Stop()
	}
	a.pending[p.ID] = p
	id := p.ID
	a.timers[id] = time.AfterFunc(a.delay, func() {
		a.fire(id)
	})
}

// Cancel discards a pending save, e.g. after the project was deleted.
func (a *AutosaveScheduler) Cancel(projectID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if t, ok := a.timers[projectID]; ok {
		t.Stop()
		delete(a.timers, projectID)
	}
	delete(a.pending, projectID)
}

// Flush saves every pending snapshot immediately. Called on shutdown so no
// debounced edit is lost.
func (a *AutosaveScheduler) Flush() {
	a.mu.Lock()
	ids := make([]string, 0, len(a.pending))
	for id := range a.pending {
		if t, ok := a.timers[id]; ok {
			t.Stop()
		}
		ids = append(ids, id)
	}
	a.mu.Unlock()

	for _, id := range ids {
		a.fire(id)
	}
}

func (a *AutosaveScheduler) fire(projectID string) {
	a.mu.Lock()
	p, ok := a.pending[projectID]
	delete(a.pending, projectID)
	delete(a.timers, projectID)
	a.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.save(ctx, p); err != nil {
		a.logger.Error("Auto-save failed",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
	}
}
