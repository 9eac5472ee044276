package user

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles user data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetByPhone retrieves a user by their phone number
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*User, error) {
	query := `
		SELECT id, phone_number, full_name, created_at
		FROM users
		WHERE phone_number = $1
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, phone).Scan(
		&user.ID,
		&user.Phone,
		&user.FullName,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `
		SELECT id, phone_number, full_name, created_at
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Phone,
		&user.FullName,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Create inserts a new user, optionally with a full name
func (r *Repository) Create(ctx context.Context, phone string, fullName *string) (*User, error) {
	query := `
		INSERT INTO users (phone_number, full_name)
		VALUES ($1, $2)
		RETURNING id, phone_number, full_name, created_at
	`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, phone, fullName).Scan(
		&user.ID,
		&user.Phone,
		&user.FullName,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SetNameIfAbsent sets the user's full name only when it is currently null.
// First non-null write wins; later uploads never overwrite a name.
func (r *Repository) SetNameIfAbsent(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE users
		SET full_name = $2
		WHERE id = $1 AND full_name IS NULL
	`

	if _, err := r.db.ExecContext(ctx, query, id, name); err != nil {
		return fmt.Errorf("failed to set user name: %w", err)
	}

	return nil
}
