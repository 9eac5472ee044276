package membership

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

func TestResolveOrCreate_CreatesWhenAbsent(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	expiry := "2026-12-31"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM memberships`).
		WithArgs(int64(7), int64(3), nil).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO memberships`).
		WithArgs(int64(7), int64(3), nil, &expiry).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	id, created, err := repo.ResolveOrCreate(context.Background(), 7, 3, nil, &expiry)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveOrCreate_SkipsExisting(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM memberships`).
		WithArgs(int64(7), int64(3), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	id, created, err := repo.ResolveOrCreate(context.Background(), 7, 3, nil, nil)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveOrCreate_DependentKey(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	dependentID := int64(11)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM memberships`).
		WithArgs(int64(7), int64(3), &dependentID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO memberships`).
		WithArgs(int64(7), int64(3), &dependentID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))
	mock.ExpectCommit()

	id, created, err := repo.ResolveOrCreate(context.Background(), 7, 3, &dependentID, nil)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(43), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveOrCreate_UniqueViolationFallsBackToExisting(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	// A concurrent identical upload wins the insert race; the unique
	// constraint violation must resolve to the existing row, not an error.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM memberships`).
		WithArgs(int64(7), int64(3), nil).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO memberships`).
		WithArgs(int64(7), int64(3), nil, nil).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectQuery(`SELECT id FROM memberships`).
		WithArgs(int64(7), int64(3), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectRollback()

	id, created, err := repo.ResolveOrCreate(context.Background(), 7, 3, nil, nil)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasClubAdminRole(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1`).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.HasClubAdminRole(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasClubAdminRole_NoRole(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT 1`).
		WithArgs(int64(7), int64(3)).
		WillReturnError(sql.ErrNoRows)

	ok, err := repo.HasClubAdminRole(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprove_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE memberships`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Approve(context.Background(), 99)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClubsForUser_GroupsMembersPerClub(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"club_id", "club_name", "status", "rejection_reason", "expiry_date",
		"dependent_id", "dependent_name", "dependent_relation",
	}).
		AddRow(int64(3), "Riverside Club", "active", nil, nil, nil, nil, nil).
		AddRow(int64(3), "Riverside Club", "active", nil, nil, int64(5), "Kabir", "son")

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	clubs, err := repo.GetClubsForUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Riverside Club", clubs[0].ClubName)
	require.Len(t, clubs[0].Members, 2)
	assert.Equal(t, "self", clubs[0].Members[0].Type)
	assert.Equal(t, "dependent", clubs[0].Members[1].Type)
	assert.Equal(t, "Kabir", *clubs[0].Members[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
