package user

import "time"

// User represents an account identified by its phone number
type User struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	FullName  *string   `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
