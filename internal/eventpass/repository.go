package eventpass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clubvision/clubvision/internal/database"
)

// ErrPassExists is returned when a pass for the same (event, user,
// dependent-or-self) tuple already exists
var ErrPassExists = errors.New("pass already exists")

// Repository handles event pass data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new event pass repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pass for (eventID, userID, dependentID-or-null).
// Returns ErrPassExists when one already exists for that tuple. The check and
// insert run in one transaction with the unique constraint as backstop.
func (r *Repository) Create(ctx context.Context, eventID, userID int64, dependentID *int64, passCode string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	findQuery := `
		SELECT id FROM event_passes
		WHERE event_id = $1
		  AND user_id = $2
		  AND (
			($3::bigint IS NULL AND dependent_id IS NULL)
			OR
			($3::bigint IS NOT NULL AND dependent_id = $3)
		  )
		LIMIT 1
	`

	var existing int64
	err = tx.QueryRowContext(ctx, findQuery, eventID, userID, dependentID).Scan(&existing)
	if err == nil {
		return ErrPassExists
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check existing pass: %w", err)
	}

	insertQuery := `
		INSERT INTO event_passes (event_id, user_id, dependent_id, pass_code)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.ExecContext(ctx, insertQuery, eventID, userID, dependentID, passCode); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrPassExists
		}
		return fmt.Errorf("failed to create pass: %w", err)
	}

	return tx.Commit()
}

// ListForUser retrieves the user's passes with event and club context,
// newest events first
func (r *Repository) ListForUser(ctx context.Context, userID int64) ([]*PassView, error) {
	query := `
		SELECT
			ep.id,
			ep.pass_code,
			e.title AS event_title,
			c.name AS club_name,
			d.name AS dependent_name,
			d.relation AS dependent_relation
		FROM event_passes ep
		JOIN events e ON e.id = ep.event_id
		JOIN clubs c ON c.id = e.club_id
		LEFT JOIN dependents d ON d.id = ep.dependent_id
		WHERE ep.user_id = $1
		ORDER BY e.event_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list passes: %w", err)
	}
	defer rows.Close()

	var passes []*PassView
	for rows.Next() {
		var (
			pass     PassView
			name     *string
			relation *string
		)
		if err := rows.Scan(
			&pass.ID,
			&pass.PassCode,
			&pass.EventTitle,
			&pass.ClubName,
			&name,
			&relation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pass: %w", err)
		}
		pass.Member = memberLabel(name, relation)
		passes = append(passes, &pass)
	}

	return passes, rows.Err()
}

// ListDependentIDsForUserEvent retrieves the dependent IDs of the user's
// passes for an event. A nil entry means a pass for the user themselves.
func (r *Repository) ListDependentIDsForUserEvent(ctx context.Context, eventID, userID int64) ([]*int64, error) {
	query := `
		SELECT dependent_id
		FROM event_passes
		WHERE event_id = $1
		  AND user_id = $2
	`

	rows, err := r.db.QueryContext(ctx, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event passes: %w", err)
	}
	defer rows.Close()

	var ids []*int64
	for rows.Next() {
		var id *int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan dependent id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListForClub retrieves all passes for a club's events, newest events first
func (r *Repository) ListForClub(ctx context.Context, clubID int64) ([]*ClubPass, error) {
	query := `
		SELECT
			ep.id,
			ep.pass_code,
			e.title AS event_title,
			u.phone_number AS phone,
			d.name AS dependent_name,
			d.relation AS dependent_relation
		FROM event_passes ep
		JOIN events e ON e.id = ep.event_id
		JOIN users u ON u.id = ep.user_id
		LEFT JOIN dependents d ON d.id = ep.dependent_id
		WHERE e.club_id = $1
		ORDER BY e.event_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list club passes: %w", err)
	}
	defer rows.Close()

	var passes []*ClubPass
	for rows.Next() {
		var (
			pass     ClubPass
			name     *string
			relation *string
		)
		if err := rows.Scan(
			&pass.ID,
			&pass.PassCode,
			&pass.EventTitle,
			&pass.Phone,
			&name,
			&relation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan club pass: %w", err)
		}
		pass.Member = memberLabel(name, relation)
		passes = append(passes, &pass)
	}

	return passes, rows.Err()
}
