package membership

// RejectMembershipRequest represents the request body for rejecting a membership
type RejectMembershipRequest struct {
	Reason string `json:"reason" validate:"required"`
}
