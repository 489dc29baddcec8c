package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"user-directory/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "first_name", "last_name", "position", "project_id", "created_at"}

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func TestUserRepo_FindAll(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "user1", "user1@example.com", "User", "One", "PROGRAMMER", 1, nil).
		AddRow(2, "user2", "user2@example.com", "User", "Two", "PROGRAMMER", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnRows(rows)

	users, err := r.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user1", users[0].Username)
	assert.Equal(t, models.PositionProgrammer, users[0].Position)
	require.NotNil(t, users[0].ProjectID)
	assert.Equal(t, 1, *users[0].ProjectID)
	assert.Equal(t, "user2", users[1].Username)
	assert.Nil(t, users[1].ProjectID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindAll_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	dbErr := errors.New("connection refused")
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(dbErr)

	users, err := r.FindAll(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "user_repo.FindAll")
}

func TestUserRepo_FindByProjectName(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "user1", "user1@example.com", "User", "One", "PROGRAMMER", 1, nil)
	mock.ExpectQuery("JOIN projects p ON u.project_id = p.id").
		WithArgs("project1").
		WillReturnRows(rows)

	users, err := r.FindByProjectName(context.Background(), "project1")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user1", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByProjectName_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	mock.ExpectQuery("JOIN projects").
		WithArgs("nonexistent").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := r.FindByProjectName(context.Background(), "nonexistent")

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepo_SaveUsers(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	projectID := 7
	users := []*models.User{
		{Username: "user1", Email: "user1@example.com", FirstName: "User", LastName: "One", Position: models.PositionProgrammer, ProjectID: &projectID},
		{Username: "user2", Email: "user2@example.com", FirstName: "User", LastName: "Two", Position: models.PositionTester},
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			"user1", "user1@example.com", "User", "One", "PROGRAMMER", int64(7),
			"user2", "user2@example.com", "User", "Two", "TESTER", nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := r.SaveUsers(context.Background(), users)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SaveUsers_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	err := r.SaveUsers(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SaveUsers_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: uniqueViolationCode})

	err := r.SaveUsers(context.Background(), []*models.User{{Username: "user1"}})

	assert.ErrorIs(t, err, ErrUserExists)
}
