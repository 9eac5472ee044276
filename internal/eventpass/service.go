package eventpass

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/clubvision/clubvision/internal/membership"
)

// ErrMembershipNotActive is returned when the requester has no active
// membership in the event's club
var ErrMembershipNotActive = errors.New("membership not approved")

// Service handles event pass business logic
type Service struct {
	repo        *Repository
	memberships *membership.Service
}

// NewService creates a new event pass service
func NewService(repo *Repository, memberships *membership.Service) *Service {
	return &Service{repo: repo, memberships: memberships}
}

// Generate creates a pass for the user (or their dependent) for an event.
// Only active members of the event's club may hold passes.
func (s *Service) Generate(ctx context.Context, eventID, userID int64, dependentID *int64) (string, error) {
	active, err := s.memberships.IsActiveMemberOfEventClub(ctx, userID, eventID, dependentID)
	if err != nil {
		return "", err
	}
	if !active {
		return "", ErrMembershipNotActive
	}

	passCode := uuid.NewString()[:10]

	if err := s.repo.Create(ctx, eventID, userID, dependentID, passCode); err != nil {
		return "", err
	}

	return passCode, nil
}

// ListForUser retrieves the user's passes
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*PassView, error) {
	return s.repo.ListForUser(ctx, userID)
}

// ListDependentIDsForUserEvent retrieves which members of the user's account
// already hold a pass for the event (nil = self)
func (s *Service) ListDependentIDsForUserEvent(ctx context.Context, eventID, userID int64) ([]*int64, error) {
	return s.repo.ListDependentIDsForUserEvent(ctx, eventID, userID)
}

// ListForClub retrieves all passes for a club
func (s *Service) ListForClub(ctx context.Context, clubID int64) ([]*ClubPass, error) {
	return s.repo.ListForClub(ctx, clubID)
}
