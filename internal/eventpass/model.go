package eventpass

import "fmt"

// PassView is an event pass with its event and club context resolved
type PassView struct {
	ID         int64  `json:"id"`
	PassCode   string `json:"pass_code"`
	EventTitle string `json:"event_title"`
	ClubName   string `json:"club_name"`
	Member     string `json:"member"`
}

// ClubPass is one row of the admin pass listing for a club
type ClubPass struct {
	ID         int64  `json:"id"`
	PassCode   string `json:"pass_code"`
	EventTitle string `json:"event_title"`
	Phone      string `json:"phone"`
	Member     string `json:"member"`
}

// memberLabel renders the human-readable member column: "Self" for the
// account holder, "{name} ({relation})" for a dependent
func memberLabel(name, relation *string) string {
	if name == nil {
		return "Self"
	}
	rel := ""
	if relation != nil {
		rel = *relation
	}
	return fmt.Sprintf("%s (%s)", *name, rel)
}
