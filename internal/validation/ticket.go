package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/helpdesk/internal/models"
)

// MobileRE matches exactly ten ASCII digits, the format every mobile number
// in the system must have.
var MobileRE = regexp.MustCompile(`^[0-9]{10}$`)

const (
	remarksMinLen = 10
	remarksMaxLen = 500
)

// TicketInput carries the user-supplied fields of a new ticket.
type TicketInput struct {
	TicketType       string
	Priority         models.TicketPriority
	SubjectName      string
	StudentName      string
	StudentMobile    string
	StudentRegNumber string
	Remarks          string
}

// ValidateTicketInput checks a ticket submission against the catalog and the
// field constraints. The student detail bundle is required if and only if the
// selected type's catalog entry demands it.
func ValidateTicketInput(in TicketInput) Errors {
	errs := Errors{}

	if in.TicketType == "" {
		errs.Add("ticketType", "Please select a ticket type")
	} else if _, ok := models.TypeByValue(in.TicketType); !ok {
		errs.Add("ticketType", "Unknown ticket type")
	}

	if in.Priority == "" {
		errs.Add("priority", "Please select a priority level")
	} else if !models.ValidPriority(in.Priority) {
		errs.Add("priority", "Unknown priority level")
	}

	if models.RequiresDetails(in.TicketType) {
		if in.SubjectName == "" {
			errs.Add("subjectName", "Subject name is required")
		}
		if in.StudentName == "" {
			errs.Add("studentName", "Student name is required")
		} else if utf8.RuneCountInString(in.StudentName) < 2 {
			errs.Add("studentName", "Student name must be at least 2 characters")
		}
		if in.StudentMobile == "" {
			errs.Add("studentMobile", "Student mobile is required")
		} else if !MobileRE.MatchString(in.StudentMobile) {
			errs.Add("studentMobile", "Mobile number must be exactly 10 digits")
		}
		if in.StudentRegNumber == "" {
			errs.Add("studentRegNumber", "Registration number is required")
		}
	}

	remarksLen := utf8.RuneCountInString(in.Remarks)
	switch {
	case in.Remarks == "":
		errs.Add("remarks", "Remarks are required")
	case remarksLen < remarksMinLen:
		errs.Add("remarks", "Remarks must be at least 10 characters")
	case remarksLen > remarksMaxLen:
		errs.Add("remarks", "Remarks must not exceed 500 characters")
	}

	return errs
}
