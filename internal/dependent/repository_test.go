package dependent

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)

	return db, mock, repo
}

func TestResolveOrCreate_ReusesExisting(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	id, err := repo.ResolveOrCreate(context.Background(), 7, "Kabir", "son")

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveOrCreate_CreatesWhenAbsent(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))
	mock.ExpectCommit()

	id, err := repo.ResolveOrCreate(context.Background(), 7, "Kabir", "son")

	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveOrCreate_UniqueViolationFallsBackToExisting(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(`SELECT id FROM dependents`).
		WithArgs(int64(7), "Kabir", "son").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectRollback()

	id, err := repo.ResolveOrCreate(context.Background(), 7, "Kabir", "son")

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
