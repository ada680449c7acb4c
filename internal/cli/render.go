package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
)

func printFieldErrors(out io.Writer, errs validation.Errors) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	fmt.Fprintln(out, "Please fix the following:")
	for _, f := range fields {
		for _, msg := range errs[f] {
			fmt.Fprintf(out, "  - %s: %s\n", f, msg)
		}
	}
}

func printTicketRow(out io.Writer, t models.Ticket) {
	fmt.Fprintf(out, "%s  %-11s %-8s %-28s %s\n",
		t.ID, t.Status, t.Priority, models.TypeLabel(t.TicketType), t.CreatedAt.Format("2006-01-02 15:04"))
}

func printTicketDetails(out io.Writer, t models.Ticket) {
	fmt.Fprintf(out, "Ticket %s\n", t.ID)
	fmt.Fprintf(out, "  Type:     %s\n", models.TypeLabel(t.TicketType))
	fmt.Fprintf(out, "  Status:   %s\n", t.Status)
	fmt.Fprintf(out, "  Priority: %s\n", t.Priority)
	if t.SubjectName != "" {
		fmt.Fprintf(out, "  Subject:  %s\n", t.SubjectName)
	}
	if t.StudentName != "" {
		fmt.Fprintf(out, "  Student:  %s (%s, reg %s)\n", t.StudentName, t.StudentMobile, t.StudentRegNumber)
	}
	fmt.Fprintf(out, "  Remarks:  %s\n", t.Remarks)
	fmt.Fprintf(out, "  Raised by %s (%s) at %s\n", t.CreatedBy, t.UserMobile, t.CreatedAt.Format("2006-01-02 15:04"))
	if !t.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "  Updated:  %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
