package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Thecityismine/project-ganttflow/internal/model"
)

// ProjectRepository is a document store for whole project schedules: one
// jsonb row per project, keyed by the project's opaque ID. Saves are full
// overwrites; there are no partial updates.
type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

// EnsureSchema creates the projects table when it does not exist yet.
func (r *ProjectRepository) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS projects (
            id         TEXT PRIMARY KEY,
            doc        JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure projects schema: %w", err)
	}
	return nil
}

// Save upserts the full project document by ID.
func (r *ProjectRepository) Save(ctx context.Context, p model.Project) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	query := `
        INSERT INTO projects (id, doc, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
    `
	if _, err := r.db.Exec(ctx, query, p.ID, doc); err != nil {
		r.logger.Error("Failed to save project",
			zap.String("project_id", p.ID),
			zap.Error(err),
		)
		return err
	}

	r.logger.Debug("Project saved",
		zap.String("project_id", p.ID),
		zap.String("name", p.Name),
	)
	return nil
}

// Delete removes a project by ID. Deleting a missing row is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.logger.Error("Failed to delete project",
			zap.String("project_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// LoadAll fetches every persisted project, oldest first.
func (r *ProjectRepository) LoadAll(ctx context.Context) ([]model.Project, error) {
	query := `SELECT doc FROM projects ORDER BY updated_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p model.Project
		if err := json.Unmarshal(doc, &p); err != nil {
			// A corrupt document should not take down the whole list.
			r.logger.Warn("Skipping undecodable project document", zap.Error(err))
			continue
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID loads a single project document.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT doc FROM projects WHERE id = $1`
	var doc []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		return nil, err
	}
	var p model.Project
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %s: %w", id, err)
	}
	return &p, nil
}
