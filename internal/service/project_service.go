package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/model"
	"github.com/Thecityismine/project-ganttflow/internal/mq"
	"github.com/Thecityismine/project-ganttflow/internal/timeline"
	"github.com/Thecityismine/project-ganttflow/internal/util"
	"github.com/Thecityismine/project-ganttflow/pkg/metrics"
)

// ProjectStore is the document-store surface the service needs.
type ProjectStore interface {
	Save(ctx context.Context, p model.Project) error
	Delete(ctx context.Context, id string) error
	LoadAll(ctx context.Context) ([]model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
}

// EventPublisher publishes domain events onto the events exchange.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// ChartInvalidator drops stale pre-rendered charts.
type ChartInvalidator interface {
	Invalidate(ctx context.Context, projectID string)
}

// ProjectService orchestrates schedule CRUD around the document store.
// Local state is the source of truth; persistence and events are
// best-effort and never roll an edit back.
type ProjectService struct {
	store     ProjectStore
	publisher EventPublisher
	cache     ChartInvalidator
	logger    *zap.Logger
}

func NewProjectService(store ProjectStore, publisher EventPublisher, cache ChartInvalidator, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		store:     store,
		publisher: publisher,
		cache:     cache,
		logger:    logger,
	}
}

// ListOrSeed returns all persisted projects. An empty store seeds one
// template project so the editor never opens blank.
func (s *ProjectService) ListOrSeed(ctx context.Context) ([]model.Project, error) {
	projects, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) > 0 {
		return projects, nil
	}

	starter := model.NewTemplateProject(util.TodayString())
	if err := s.Save(ctx, starter); err != nil {
		// The in-memory starter is still usable; the next edit retries.
		s.logger.Error("Initial template save failed", zap.Error(err))
	}
	return []model.Project{starter}, nil
}

// Create makes a fresh template project starting today and persists it.
func (s *ProjectService) Create(ctx context.Context) (model.Project, error) {
	p := model.NewTemplateProject(util.TodayString())
	if err := s.Save(ctx, p); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// Get loads one project.
func (s *ProjectService) Get(ctx context.Context, id string) (model.Project, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	return *p, nil
}

// Duplicate deep-copies a project under fresh identifiers and persists the
// copy.
func (s *ProjectService) Duplicate(ctx context.Context, id string) (model.Project, error) {
	src, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	copy := src.Duplicate()
	if err := s.Save(ctx, copy); err != nil {
		return model.Project{}, err
	}
	return copy, nil
}

// Save upserts the full document, drops the stale chart render, and
// announces the save on the event bus.
func (s *ProjectService) Save(ctx context.Context, p model.Project) error {
	if err := s.store.Save(ctx, p); err != nil {
		metrics.IncrementProjectSave("failed")
		return err
	}
	metrics.IncrementProjectSave("success")

	if s.cache != nil {
		s.cache.Invalidate(ctx, p.ID)
	}
	if s.publisher != nil {
		payload := mq.ProjectSavedPayload{
			ProjectID: p.ID,
			Name:      p.Name,
			SavedAt:   time.Now(),
		}
		if err := s.publisher.Publish(mq.RoutingProjectSaved, payload); err != nil {
			// Event fan-out is advisory; the save already succeeded.
			s.logger.Warn("Failed to publish project.saved",
				zap.String("project_id", p.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Delete removes a project. Store failures are logged and swallowed: the
// caller already dropped the project from its own state.
func (s *ProjectService) Delete(ctx context.Context, id string) {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete project",
			zap.String("project_id", id),
			zap.Error(err),
		)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	if s.publisher != nil {
		payload := mq.ProjectDeletedPayload{ProjectID: id, DeletedAt: time.Now()}
		if err := s.publisher.Publish(mq.RoutingProjectDeleted, payload); err != nil {
			s.logger.Warn("Failed to publish project.deleted",
				zap.String("project_id", id),
				zap.Error(err),
			)
		}
	}
}

// RebaseStartDate loads a project, rebases its whole schedule onto the new
// start date, and persists the result.
func (s *ProjectService) RebaseStartDate(ctx context.Context, id, newStart string) (model.Project, error) {
	src, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	rebased := timeline.RebaseProjectStart(*src, newStart)
	metrics.RebaseCount.Inc()

	if err := s.Save(ctx, rebased); err != nil {
		return model.Project{}, err
	}
	return rebased, nil
}
