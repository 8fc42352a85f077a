package advisor

import (
	"strings"

	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

// Resolve returns the first record, in dataset order, that the query
// matches. All match rules are tried on each record before moving on, so
// an earlier row matched by a weak rule beats a later row matched by ID.
func Resolve(records []dataset.StudentRecord, query string) (*dataset.StudentRecord, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	for i := range records {
		if matches(&records[i], q) {
			return &records[i], true
		}
	}
	return nil, false
}

// matches expects q already trimmed and lowercased.
func matches(r *dataset.StudentRecord, q string) bool {
	id := strings.ToLower(r.ID)
	name := strings.ToLower(r.Name)
	domain := strings.ToLower(r.InterestedDomain)

	if q == id || q == name {
		return true
	}
	if domain != "" && strings.Contains(q, domain) {
		return true
	}
	if name != "" && (strings.Contains(q, name) || strings.Contains(name, q)) {
		return true
	}
	if q == domain {
		return true
	}
	for _, sk := range r.Skills {
		sk = strings.ToLower(strings.TrimSpace(sk))
		if sk != "" && strings.Contains(q, sk) {
			return true
		}
	}
	return false
}
