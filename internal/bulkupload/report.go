package bulkupload

// CreatedEntry records one row that produced a new membership
type CreatedEntry struct {
	Row          int    `json:"row"`
	Phone        string `json:"phone"`
	Member       string `json:"member"`
	MembershipID int64  `json:"membership_id"`
}

// SkippedEntry records one row whose membership already existed
type SkippedEntry struct {
	Row          int    `json:"row"`
	Phone        string `json:"phone"`
	Member       string `json:"member"`
	MembershipID int64  `json:"membership_id"`
	Reason       string `json:"reason"`
}

// ErrorEntry records one row that failed validation or processing
type ErrorEntry struct {
	Row   int    `json:"row"`
	Phone string `json:"phone"`
	Error string `json:"error"`
}

// Summary holds the per-outcome counts of an ingestion
type Summary struct {
	TotalRows int `json:"total_rows"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Report is the result of one bulk upload. Success is always true: row
// failures are reported inside Errors, not as a pipeline-level failure,
// since partial success is the normal case for bulk ingestion.
type Report struct {
	Success bool           `json:"success"`
	Summary Summary        `json:"summary"`
	Created []CreatedEntry `json:"created"`
	Skipped []SkippedEntry `json:"skipped"`
	Errors  []ErrorEntry   `json:"errors"`
}

// NewReport returns an empty report. Slices are non-nil so the JSON output
// always contains arrays.
func NewReport() *Report {
	return &Report{
		Success: true,
		Created: []CreatedEntry{},
		Skipped: []SkippedEntry{},
		Errors:  []ErrorEntry{},
	}
}

func (r *Report) addCreated(row int, phone, member string, membershipID int64) {
	r.Created = append(r.Created, CreatedEntry{
		Row:          row,
		Phone:        phone,
		Member:       member,
		MembershipID: membershipID,
	})
	r.Summary.Created++
}

func (r *Report) addSkipped(row int, phone, member string, membershipID int64) {
	r.Skipped = append(r.Skipped, SkippedEntry{
		Row:          row,
		Phone:        phone,
		Member:       member,
		MembershipID: membershipID,
		Reason:       "Membership already exists",
	})
	r.Summary.Skipped++
}

func (r *Report) addError(row int, phone, message string) {
	r.Errors = append(r.Errors, ErrorEntry{
		Row:   row,
		Phone: phone,
		Error: message,
	})
	r.Summary.Errors++
}

// finalize computes total_rows from the per-outcome counts. Not called for
// header-missing uploads, which report total_rows as zero by contract.
func (r *Report) finalize() {
	r.Summary.TotalRows = r.Summary.Created + r.Summary.Skipped + r.Summary.Errors
}
