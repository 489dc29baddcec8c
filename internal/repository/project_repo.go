package repo

import (
	"context"
	"database/sql"
	"errors"

	"user-directory/internal/lib"
	"user-directory/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ProjectRepository interface {
	Create(ctx context.Context, name string) (int, error)
	GetByName(ctx context.Context, name string) (*models.Project, error)
	GetSummary(ctx context.Context, name string) (*models.ProjectSummary, error)
}

type ProjectRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewProjectRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ProjectRepo {
	return &ProjectRepo{
		db:     db,
		getter: c,
	}
}

func (r *ProjectRepo) Create(ctx context.Context, name string) (int, error) {
	const op = "project_repo.Create"

	query := `
		INSERT INTO projects (name, created_at)
		VALUES ($1, now())
		RETURNING id;
	`

	var projectID int
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, name).Scan(&projectID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrProjectExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return projectID, nil
}

func (r *ProjectRepo) GetByName(ctx context.Context, name string) (*models.Project, error) {
	const op = "project_repo.GetByName"

	query := `
		SELECT id, name, created_at
		FROM projects
		WHERE name = $1;
	`

	var project models.Project
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &project, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &project, nil
}

func (r *ProjectRepo) GetSummary(ctx context.Context, name string) (*models.ProjectSummary, error) {
	const op = "project_repo.GetSummary"

	query := `
		SELECT p.name, COUNT(u.id) AS user_count
		FROM projects p
		LEFT JOIN users u ON u.project_id = p.id
		WHERE p.name = $1
		GROUP BY p.id, p.name;
	`

	var summary models.ProjectSummary
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &summary, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &summary, nil
}
