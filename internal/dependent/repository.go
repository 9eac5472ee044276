package dependent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubvision/clubvision/internal/database"
)

// Repository handles dependent data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new dependent repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListForUser retrieves all dependents of a user, newest first
func (r *Repository) ListForUser(ctx context.Context, userID int64) ([]*Dependent, error) {
	query := `
		SELECT id, user_id, name, relation, date_of_birth, created_at
		FROM dependents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependents: %w", err)
	}
	defer rows.Close()

	var dependents []*Dependent
	for rows.Next() {
		dep := &Dependent{}
		if err := rows.Scan(
			&dep.ID,
			&dep.UserID,
			&dep.Name,
			&dep.Relation,
			&dep.DateOfBirth,
			&dep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dependent: %w", err)
		}
		dependents = append(dependents, dep)
	}

	return dependents, rows.Err()
}

// Create inserts a new dependent for a user
func (r *Repository) Create(ctx context.Context, userID int64, name, relation string, dateOfBirth *string) (*Dependent, error) {
	query := `
		INSERT INTO dependents (user_id, name, relation, date_of_birth)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, relation, date_of_birth, created_at
	`

	dep := &Dependent{}
	err := r.db.QueryRowContext(ctx, query, userID, name, relation, dateOfBirth).Scan(
		&dep.ID,
		&dep.UserID,
		&dep.Name,
		&dep.Relation,
		&dep.DateOfBirth,
		&dep.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dependent: %w", err)
	}

	return dep, nil
}

// ResolveOrCreate returns the ID of the dependent matching
// (user_id, name, relation), inserting it if absent. The check and insert run
// in one transaction; an insert losing a race on the natural-key unique
// constraint falls back to the existing row.
func (r *Repository) ResolveOrCreate(ctx context.Context, userID int64, name, relation string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	findQuery := `
		SELECT id FROM dependents
		WHERE user_id = $1 AND name = $2 AND relation = $3
		LIMIT 1
	`

	var id int64
	err = tx.QueryRowContext(ctx, findQuery, userID, name, relation).Scan(&id)
	if err == nil {
		return id, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to find dependent: %w", err)
	}

	insertQuery := `
		INSERT INTO dependents (user_id, name, relation)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, insertQuery, userID, name, relation).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			// Lost the race to a concurrent identical upload; the row exists now.
			findErr := r.db.QueryRowContext(ctx, findQuery, userID, name, relation).Scan(&id)
			if findErr != nil {
				return 0, fmt.Errorf("failed to find dependent after conflict: %w", findErr)
			}
			return id, nil
		}
		return 0, fmt.Errorf("failed to create dependent: %w", err)
	}

	return id, tx.Commit()
}
