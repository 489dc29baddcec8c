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

type UserRepository interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByProjectName(ctx context.Context, projectName string) ([]*models.User, error)
	SaveUsers(ctx context.Context, users []*models.User) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

// FindAll returns every user in insertion order.
func (r *UserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.FindAll"

	query := `
		SELECT id, username, email, first_name, last_name, position, project_id, created_at
		FROM users
		ORDER BY id;
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) FindByProjectName(ctx context.Context, projectName string) ([]*models.User, error) {
	const op = "user_repo.FindByProjectName"

	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.position, u.project_id, u.created_at
		FROM users u
		JOIN projects p ON u.project_id = p.id
		WHERE p.name = $1
		ORDER BY u.id;
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, projectName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}

// SaveUsers inserts all users with a single multi-row statement.
func (r *UserRepo) SaveUsers(ctx context.Context, users []*models.User) error {
	const op = "user_repo.SaveUsers"

	if len(users) == 0 {
		return nil
	}

	query := `
		INSERT INTO users (username, email, first_name, last_name, position, project_id)
		VALUES (:username, :email, :first_name, :last_name, :position, :project_id)
	`

	_, err := sqlx.NamedExecContext(ctx, r.getter.DefaultTrOrDB(ctx, r.db), query, users)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrUserExists
			}
		}
		return lib.Err(op, err)
	}

	return nil
}
