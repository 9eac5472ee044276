package membership

import "time"

// Membership statuses
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// Membership represents a user's (or their dependent's) membership in a club.
// (user_id, club_id, dependent_id) is the natural key; a null dependent_id
// means the membership is for the user themselves and matches null-to-null.
type Membership struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	ClubID          int64      `json:"club_id"`
	DependentID     *int64     `json:"dependent_id,omitempty"`
	Status          string     `json:"status"`
	Role            string     `json:"role"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// MemberEntry is one member line inside a club view: the account holder
// ("self") or a named dependent
type MemberEntry struct {
	Type     string  `json:"type"`
	Name     *string `json:"name,omitempty"`
	Relation *string `json:"relation,omitempty"`
}

// ClubView groups a user's memberships per club for GET /me/clubs
type ClubView struct {
	ClubID          int64         `json:"club_id"`
	ClubName        string        `json:"club_name"`
	Status          string        `json:"status"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	ExpiryDate      *time.Time    `json:"expiry_date,omitempty"`
	Members         []MemberEntry `json:"members"`
}

// AdminClub is a club where a user holds an admin role
type AdminClub struct {
	ClubID   int64  `json:"club_id"`
	ClubName string `json:"club_name"`
	Role     string `json:"role"`
}

// PendingMember is a membership awaiting approval
type PendingMember struct {
	MembershipID  int64   `json:"membership_id"`
	Phone         string  `json:"phone"`
	DependentName *string `json:"dependent_name,omitempty"`
	Relation      *string `json:"relation,omitempty"`
}

// ClubMember is one row of the admin member roster for a club
type ClubMember struct {
	MembershipID    int64   `json:"membership_id"`
	Phone           string  `json:"phone"`
	MemberType      string  `json:"member_type"`
	Name            *string `json:"name,omitempty"`
	Relation        *string `json:"relation,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}
