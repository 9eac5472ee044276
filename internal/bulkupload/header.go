package bulkupload

import "strings"

// Canonical column names the pipeline reads. Extra columns are ignored.
const (
	fieldPhone    = "phone"
	fieldName     = "name"
	fieldRelation = "relation"
	fieldExpiry   = "membership_expiry"
)

// canonicalKey normalizes a header cell: strip one leading byte-order mark,
// trim surrounding whitespace, lowercase. Applied to every header so column
// case, spacing, and a BOM on the first column do not affect parsing.
func canonicalKey(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

// headerIndex maps canonical column names to their positions in the header
// row. Later duplicates of the same canonical name win, matching how CSV
// dict readers key rows by header.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[canonicalKey(h)] = i
	}
	return idx
}
