package models

// TicketType describes one entry of the fixed ticket-type catalog.
// RequiresDetails marks types that demand the student detail bundle
// (subject, student name, student mobile, registration number).
type TicketType struct {
	Value           string
	Label           string
	RequiresDetails bool
}

// TicketTypes is the full catalog, in the order the intake form offers them.
var TicketTypes = []TicketType{
	{Value: "zenox_exam_not_found", Label: "Zenox Exam Not Found", RequiresDetails: true},
	{Value: "zenox_questions_not_visible", Label: "Zenox Student Exam – Questions not visible", RequiresDetails: true},
	{Value: "technical_issue", Label: "Technical Issue", RequiresDetails: false},
	{Value: "other", Label: "Other", RequiresDetails: false},
}

// TypeByValue looks up a catalog entry. ok is false for unknown values.
func TypeByValue(value string) (TicketType, bool) {
	for _, t := range TicketTypes {
		if t.Value == value {
			return t, true
		}
	}
	return TicketType{}, false
}

// RequiresDetails reports whether the given ticket type demands the student
// detail bundle. Unknown types do not: the catalog is bounded, so an unknown
// value fails open for the detail requirement.
func RequiresDetails(value string) bool {
	t, ok := TypeByValue(value)
	return ok && t.RequiresDetails
}

// TypeLabel returns the display label for a type value, or the raw value
// itself when it is not in the catalog.
func TypeLabel(value string) string {
	if t, ok := TypeByValue(value); ok {
		return t.Label
	}
	return value
}

// TicketStatuses lists the lifecycle states an editor may set.
var TicketStatuses = []TicketStatus{
	TicketStatusPending,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// TicketPriorities lists the supported priorities, lowest first.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}

// ValidStatus reports whether s is one of the catalog statuses.
func ValidStatus(s TicketStatus) bool {
	for _, v := range TicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is one of the catalog priorities.
func ValidPriority(p TicketPriority) bool {
	for _, v := range TicketPriorities {
		if v == p {
			return true
		}
	}
	return false
}
