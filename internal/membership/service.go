package membership

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Common errors
var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrReasonRequired     = errors.New("rejection reason is required")
	ErrAdminRequired      = errors.New("admin access required")
	ErrClubAdminRequired  = errors.New("admin access required for this club")
)

// Service handles membership business logic
type Service struct {
	repo *Repository
}

// NewService creates a new membership service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ResolveOrCreate returns the membership ID for the natural key, creating an
// active membership if absent. created is false when a membership of any
// status already exists; existing rows are never reactivated here.
func (s *Service) ResolveOrCreate(ctx context.Context, userID, clubID int64, dependentID *int64, expiryDate *string) (int64, bool, error) {
	return s.repo.ResolveOrCreate(ctx, userID, clubID, dependentID, expiryDate)
}

// GetClubsForUser retrieves the user's memberships grouped per club
func (s *Service) GetClubsForUser(ctx context.Context, userID int64) ([]*ClubView, error) {
	return s.repo.GetClubsForUser(ctx, userID)
}

// GetAdminClubs retrieves the clubs where the user holds an admin role
func (s *Service) GetAdminClubs(ctx context.Context, userID int64) ([]*AdminClub, error) {
	return s.repo.GetAdminClubs(ctx, userID)
}

// EnsureAdmin returns ErrAdminRequired unless the user holds an admin or
// superadmin role in at least one club
func (s *Service) EnsureAdmin(ctx context.Context, userID int64) error {
	ok, err := s.repo.HasAdminRole(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAdminRequired
	}
	return nil
}

// EnsureClubAdmin returns ErrClubAdminRequired unless the user holds an admin
// or superadmin role for the given club
func (s *Service) EnsureClubAdmin(ctx context.Context, userID, clubID int64) error {
	ok, err := s.repo.HasClubAdminRole(ctx, userID, clubID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClubAdminRequired
	}
	return nil
}

// PendingForClub retrieves the club's pending memberships
func (s *Service) PendingForClub(ctx context.Context, clubID int64) ([]*PendingMember, error) {
	return s.repo.PendingForClub(ctx, clubID)
}

// MembersForClub retrieves the full member roster for a club
func (s *Service) MembersForClub(ctx context.Context, clubID int64) ([]*ClubMember, error) {
	return s.repo.MembersForClub(ctx, clubID)
}

// Approve sets a membership's status to active
func (s *Service) Approve(ctx context.Context, membershipID int64) error {
	if err := s.repo.Approve(ctx, membershipID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMembershipNotFound
		}
		return err
	}
	return nil
}

// Reject sets a membership's status to rejected with a reason
func (s *Service) Reject(ctx context.Context, membershipID int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	if err := s.repo.Reject(ctx, membershipID, strings.TrimSpace(reason)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMembershipNotFound
		}
		return err
	}
	return nil
}

// IsActiveMemberOfEventClub reports whether the user (or the given dependent)
// has an active membership in the club hosting the event
func (s *Service) IsActiveMemberOfEventClub(ctx context.Context, userID, eventID int64, dependentID *int64) (bool, error) {
	return s.repo.IsActiveMemberOfEventClub(ctx, userID, eventID, dependentID)
}
