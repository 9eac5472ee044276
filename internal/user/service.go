package user

import (
	"context"

	"github.com/clubvision/clubvision/internal/database"
)

// Service handles user directory business logic
type Service struct {
	repo *Repository
}

// NewService creates a new user service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetByPhone retrieves a user by phone, or nil when absent
func (s *Service) GetByPhone(ctx context.Context, phone string) (*User, error) {
	return s.repo.GetByPhone(ctx, phone)
}

// Create inserts a new user, optionally with a full name
func (s *Service) Create(ctx context.Context, phone string, fullName *string) (*User, error) {
	return s.repo.Create(ctx, phone, fullName)
}

// FindOrCreate returns the user for the phone, creating a nameless one if
// absent. A concurrent create racing on the phone unique constraint is
// resolved by retrying the lookup.
func (s *Service) FindOrCreate(ctx context.Context, phone string) (*User, error) {
	existing, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.repo.Create(ctx, phone, nil)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return s.repo.GetByPhone(ctx, phone)
		}
		return nil, err
	}

	return created, nil
}

// SetNameIfAbsent sets the user's full name only when it is currently null
func (s *Service) SetNameIfAbsent(ctx context.Context, id int64, name string) error {
	return s.repo.SetNameIfAbsent(ctx, id, name)
}
