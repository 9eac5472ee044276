package membership

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubvision/clubvision/internal/database"
)

// Repository handles membership data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new membership repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// naturalKeyFilter matches a membership by (user_id, club_id, dependent_id),
// treating a null dependent_id as "self" and matching null-to-null.
const naturalKeyFilter = `
	user_id = $1
	AND club_id = $2
	AND (
		($3::bigint IS NULL AND dependent_id IS NULL)
		OR
		($3::bigint IS NOT NULL AND dependent_id = $3)
	)
`

// ResolveOrCreate returns the membership for the natural key
// (userID, clubID, dependentID-or-null), inserting an active one with the
// given expiry if absent. Returns created=false with the existing ID when a
// membership of any status already occupies the key. The check and insert run
// in one transaction; an insert losing a race on the unique constraint falls
// back to the existing row.
func (r *Repository) ResolveOrCreate(ctx context.Context, userID, clubID int64, dependentID *int64, expiryDate *string) (int64, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	findQuery := `SELECT id FROM memberships WHERE` + naturalKeyFilter + `LIMIT 1`

	var id int64
	err = tx.QueryRowContext(ctx, findQuery, userID, clubID, dependentID).Scan(&id)
	if err == nil {
		return id, false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("failed to find membership: %w", err)
	}

	insertQuery := `
		INSERT INTO memberships (user_id, club_id, dependent_id, status, expiry_date)
		VALUES ($1, $2, $3, 'active', $4)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, insertQuery, userID, clubID, dependentID, expiryDate).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			// Lost the race to a concurrent identical upload; the row exists now.
			findErr := r.db.QueryRowContext(ctx, findQuery, userID, clubID, dependentID).Scan(&id)
			if findErr != nil {
				return 0, false, fmt.Errorf("failed to find membership after conflict: %w", findErr)
			}
			return id, false, nil
		}
		return 0, false, fmt.Errorf("failed to create membership: %w", err)
	}

	return id, true, tx.Commit()
}

// GetClubsForUser retrieves the user's memberships grouped per club,
// ordered by club name
func (r *Repository) GetClubsForUser(ctx context.Context, userID int64) ([]*ClubView, error) {
	query := `
		SELECT
			c.id AS club_id,
			c.name AS club_name,
			m.status,
			m.rejection_reason,
			m.expiry_date,
			m.dependent_id,
			d.name AS dependent_name,
			d.relation AS dependent_relation
		FROM memberships m
		JOIN clubs c ON c.id = m.club_id
		LEFT JOIN dependents d ON d.id = m.dependent_id
		WHERE m.user_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs for user: %w", err)
	}
	defer rows.Close()

	var clubs []*ClubView
	byClub := make(map[int64]*ClubView)

	for rows.Next() {
		var (
			clubID          int64
			clubName        string
			status          string
			rejectionReason *string
			expiryDate      sql.NullTime
			dependentID     *int64
			dependentName   *string
			relation        *string
		)
		if err := rows.Scan(
			&clubID,
			&clubName,
			&status,
			&rejectionReason,
			&expiryDate,
			&dependentID,
			&dependentName,
			&relation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan club membership: %w", err)
		}

		club, ok := byClub[clubID]
		if !ok {
			club = &ClubView{
				ClubID:          clubID,
				ClubName:        clubName,
				Status:          status,
				RejectionReason: rejectionReason,
				Members:         []MemberEntry{},
			}
			if expiryDate.Valid {
				club.ExpiryDate = &expiryDate.Time
			}
			byClub[clubID] = club
			clubs = append(clubs, club)
		}

		if dependentID == nil {
			club.Members = append(club.Members, MemberEntry{Type: "self"})
		} else {
			club.Members = append(club.Members, MemberEntry{
				Type:     "dependent",
				Name:     dependentName,
				Relation: relation,
			})
		}
	}

	return clubs, rows.Err()
}

// GetAdminClubs retrieves the clubs where the user holds an admin or
// superadmin role
func (r *Repository) GetAdminClubs(ctx context.Context, userID int64) ([]*AdminClub, error) {
	query := `
		SELECT DISTINCT c.id, c.name, m.role
		FROM memberships m
		JOIN clubs c ON c.id = m.club_id
		WHERE m.user_id = $1
		  AND m.role IN ('admin', 'superadmin')
		ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*AdminClub
	for rows.Next() {
		club := &AdminClub{}
		if err := rows.Scan(&club.ClubID, &club.ClubName, &club.Role); err != nil {
			return nil, fmt.Errorf("failed to scan admin club: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

// HasAdminRole reports whether the user holds an admin or superadmin role in
// any club
func (r *Repository) HasAdminRole(ctx context.Context, userID int64) (bool, error) {
	query := `
		SELECT 1
		FROM memberships
		WHERE user_id = $1
		  AND role IN ('admin', 'superadmin')
		LIMIT 1
	`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check admin role: %w", err)
	}

	return true, nil
}

// HasClubAdminRole reports whether the user holds an admin or superadmin role
// for the given club
func (r *Repository) HasClubAdminRole(ctx context.Context, userID, clubID int64) (bool, error) {
	query := `
		SELECT 1
		FROM memberships
		WHERE user_id = $1
		  AND club_id = $2
		  AND role IN ('admin', 'superadmin')
		LIMIT 1
	`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID, clubID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check club admin role: %w", err)
	}

	return true, nil
}

// PendingForClub retrieves the club's memberships with status 'pending'
func (r *Repository) PendingForClub(ctx context.Context, clubID int64) ([]*PendingMember, error) {
	query := `
		SELECT
			m.id AS membership_id,
			u.phone_number AS phone,
			d.name AS dependent_name,
			d.relation AS relation
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		LEFT JOIN dependents d ON d.id = m.dependent_id
		WHERE m.club_id = $1
		  AND m.status = 'pending'
	`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending members: %w", err)
	}
	defer rows.Close()

	var members []*PendingMember
	for rows.Next() {
		member := &PendingMember{}
		if err := rows.Scan(
			&member.MembershipID,
			&member.Phone,
			&member.DependentName,
			&member.Relation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// MembersForClub retrieves the full member roster for a club, ordered by phone
func (r *Repository) MembersForClub(ctx context.Context, clubID int64) ([]*ClubMember, error) {
	query := `
		SELECT
			m.id,
			u.phone_number,
			m.status,
			m.rejection_reason,
			d.name AS dependent_name,
			d.relation AS dependent_relation
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		LEFT JOIN dependents d ON d.id = m.dependent_id
		WHERE m.club_id = $1
		ORDER BY u.phone_number
	`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get club members: %w", err)
	}
	defer rows.Close()

	var members []*ClubMember
	for rows.Next() {
		member := &ClubMember{}
		if err := rows.Scan(
			&member.MembershipID,
			&member.Phone,
			&member.Status,
			&member.RejectionReason,
			&member.Name,
			&member.Relation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan club member: %w", err)
		}
		if member.Name == nil {
			member.MemberType = "self"
		} else {
			member.MemberType = "dependent"
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Approve sets a membership's status to 'active'
func (r *Repository) Approve(ctx context.Context, membershipID int64) error {
	query := `
		UPDATE memberships
		SET status = 'active',
		    rejection_reason = NULL
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, membershipID)
	if err != nil {
		return fmt.Errorf("failed to approve membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Reject sets a membership's status to 'rejected' with a reason
func (r *Repository) Reject(ctx context.Context, membershipID int64, reason string) error {
	query := `
		UPDATE memberships
		SET status = 'rejected',
		    rejection_reason = $2
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, membershipID, reason)
	if err != nil {
		return fmt.Errorf("failed to reject membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// IsActiveMemberOfEventClub reports whether the user (or the given dependent)
// has an active membership in the club hosting the event
func (r *Repository) IsActiveMemberOfEventClub(ctx context.Context, userID, eventID int64, dependentID *int64) (bool, error) {
	query := `
		SELECT 1
		FROM memberships m
		JOIN events e ON e.club_id = m.club_id
		WHERE e.id = $2
		  AND m.status = 'active'
		  AND m.user_id = $1
		  AND (
			($3::bigint IS NULL AND m.dependent_id IS NULL)
			OR
			($3::bigint IS NOT NULL AND m.dependent_id = $3)
		  )
		LIMIT 1
	`

	var one int
	err := r.db.QueryRowContext(ctx, query, userID, eventID, dependentID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check event club membership: %w", err)
	}

	return true, nil
}
