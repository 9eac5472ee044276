package dependent

// CreateDependentRequest represents the request body for adding a dependent
type CreateDependentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Relation    string  `json:"relation" validate:"required"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// DependentResponse represents the response for a single dependent
type DependentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Relation    string  `json:"relation"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Dependent model to a DependentResponse DTO
func (d *Dependent) ToResponse() *DependentResponse {
	return &DependentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Relation:    d.Relation,
		DateOfBirth: d.DateOfBirth,
		CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
