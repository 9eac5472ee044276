package dependent

import "time"

// Dependent represents a family member attached to a user account.
// (user_id, name, relation) is the natural key.
type Dependent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Relation    string    `json:"relation"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
