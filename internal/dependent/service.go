package dependent

import (
	"context"
	"errors"
	"strings"
)

// Common errors
var (
	ErrNameRequired     = errors.New("name is required")
	ErrRelationRequired = errors.New("relation is required")
)

// Service handles dependent business logic
type Service struct {
	repo *Repository
}

// NewService creates a new dependent service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListForUser retrieves all dependents of a user
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*Dependent, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Create adds a new dependent for a user
func (s *Service) Create(ctx context.Context, userID int64, req *CreateDependentRequest) (*Dependent, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Relation) == "" {
		return nil, ErrRelationRequired
	}

	return s.repo.Create(ctx, userID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Relation), req.DateOfBirth)
}

// ResolveOrCreate returns the dependent ID for (userID, name, relation),
// creating the dependent if absent
func (s *Service) ResolveOrCreate(ctx context.Context, userID int64, name, relation string) (int64, error) {
	return s.repo.ResolveOrCreate(ctx, userID, name, relation)
}
