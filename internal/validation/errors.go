// Package validation holds the pure input-validation rules for tickets and
// accounts. Validators collect every violated constraint keyed by field name,
// so the caller can surface all problems at once instead of the first one.
package validation

import (
	"sort"
	"strings"
)

// Errors maps a field name to the list of constraint violations on it.
// A nil or empty map means the input passed.
type Errors map[string][]string

// Add records a violation for the given field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Ok reports whether no violation was recorded.
func (e Errors) Ok() bool {
	return len(e) == 0
}

// Error renders all violations sorted by field, one "field: message" pair
// per segment, so Errors can travel as an ordinary error value.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		for _, msg := range e[f] {
			parts = append(parts, f+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}
