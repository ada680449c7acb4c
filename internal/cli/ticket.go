package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
)

// NewTicket walks the intake form: type, priority, the detail bundle when
// the chosen type requires it, and remarks. After the ticket is stored, the
// SMS notifier is invoked; its outcome is reported but never affects the
// ticket itself.
func (a *App) NewTicket(ctx context.Context) error {
	session, ok := a.session()
	if !ok {
		return nil
	}

	a.println("Ticket types:")
	for i, t := range models.TicketTypes {
		a.printf("  %d) %s\n", i+1, t.Label)
	}
	choice, err := GetSimpleText(a.reader, "Select ticket type (number)", a.out)
	if err != nil {
		return err
	}
	in := validation.TicketInput{}
	if idx := parseIndex(choice, len(models.TicketTypes)); idx >= 0 {
		in.TicketType = models.TicketTypes[idx].Value
	} else {
		in.TicketType = choice
	}

	priority, err := GetSimpleText(a.reader, "Priority (low/medium/high/urgent, empty for medium)", a.out)
	if err != nil {
		return err
	}
	in.Priority = models.TicketPriority(priority)

	if models.RequiresDetails(in.TicketType) {
		if in.SubjectName, err = GetSimpleText(a.reader, "Subject name", a.out); err != nil {
			return err
		}
		if in.StudentName, err = GetSimpleText(a.reader, "Student name", a.out); err != nil {
			return err
		}
		if in.StudentMobile, err = GetSimpleText(a.reader, "Student mobile (10 digits)", a.out); err != nil {
			return err
		}
		if in.StudentRegNumber, err = GetSimpleText(a.reader, "Student registration number", a.out); err != nil {
			return err
		}
	}

	if in.Remarks, err = GetMultiline(a.reader, "Remarks (10-500 characters)", a.out); err != nil {
		return err
	}

	ticket, err := a.tickets.Create(ctx, in, session.Account.Username, session.Account.Mobile)
	if err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			printFieldErrors(a.out, errs)
			return nil
		}
		return err
	}

	a.printf("Ticket %s created.\n", ticket.ID)

	// best-effort alert; the ticket stays regardless of the outcome
	if record, err := a.notifier.SendAlert(ctx, ticket); err != nil {
		a.println("Note: admin alert not sent:", err)
	} else {
		a.printf("SMS alert sent to %s.\n", maskedTo(record.To))
	}
	return nil
}

// List prints the ticket table: the whole collection for admins, the user's
// own tickets otherwise. An optional status argument filters the rows.
func (a *App) List(ctx context.Context, status string) error {
	session, ok := a.session()
	if !ok {
		return nil
	}

	var list []models.Ticket
	switch {
	case status != "":
		if !models.ValidStatus(models.TicketStatus(status)) {
			a.println("Unknown status:", status, "(use pending, in_progress, resolved or closed)")
			return nil
		}
		list = a.tickets.ListByStatus(models.TicketStatus(status))
		if !a.isAdmin() {
			list = filterByMobile(list, session.Account.Mobile)
		}
	case a.isAdmin():
		list = a.tickets.List()
	default:
		list = a.tickets.ListByMobile(session.Account.Mobile)
	}

	if len(list) == 0 {
		a.println("No tickets.")
		return nil
	}
	for _, t := range list {
		printTicketRow(a.out, t)
	}
	return nil
}

// Show prints one ticket in full.
func (a *App) Show(ctx context.Context, id string) error {
	if _, ok := a.session(); !ok {
		return nil
	}
	ticket, ok := a.tickets.GetByID(id)
	if !ok {
		a.println("Ticket not found:", id)
		return nil
	}
	printTicketDetails(a.out, *ticket)
	return nil
}

func filterByMobile(list []models.Ticket, mobile string) []models.Ticket {
	var out []models.Ticket
	for _, t := range list {
		if t.UserMobile == mobile {
			out = append(out, t)
		}
	}
	return out
}

// parseIndex converts a 1-based menu choice to a 0-based index, or -1 when
// the input is not a number in range.
func parseIndex(s string, n int) int {
	var idx int
	if _, err := fmt.Sscanf(s, "%d", &idx); err != nil {
		return -1
	}
	if idx < 1 || idx > n {
		return -1
	}
	return idx - 1
}
