package cli

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/export"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/sms"
	"github.com/dmitrijs2005/helpdesk/internal/tickets"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
)

// requireAdmin gates the triage commands.
func (a *App) requireAdmin() bool {
	if !a.isAdmin() {
		a.println("This command requires the admin role.")
		return false
	}
	return true
}

// Edit updates a ticket's status, priority, or remarks. Empty input keeps
// the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.requireAdmin() {
		return nil
	}
	ticket, ok := a.tickets.GetByID(id)
	if !ok {
		a.println("Ticket not found:", id)
		return nil
	}
	printTicketDetails(a.out, *ticket)

	upd := tickets.Update{}

	status, err := GetSimpleText(a.reader, "New status (pending/in_progress/resolved/closed, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		s := models.TicketStatus(status)
		if !models.ValidStatus(s) {
			a.println("Unknown status:", status)
			return nil
		}
		upd.Status = &s
	}

	priority, err := GetSimpleText(a.reader, "New priority (low/medium/high/urgent, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if priority != "" {
		p := models.TicketPriority(priority)
		if !models.ValidPriority(p) {
			a.println("Unknown priority:", priority)
			return nil
		}
		upd.Priority = &p
	}

	remarks, err := GetMultiline(a.reader, "New remarks (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if remarks != "" {
		upd.Remarks = &remarks
	}

	if upd.Status == nil && upd.Priority == nil && upd.Remarks == nil {
		a.println("Nothing to change.")
		return nil
	}

	updated, err := a.tickets.UpdateTicket(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.println("Ticket not found:", id)
			return nil
		}
		return err
	}
	a.printf("Ticket %s updated (status %s).\n", updated.ID, updated.Status)
	return nil
}

// Delete removes a ticket permanently. Deleting an unknown id is a no-op.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.requireAdmin() {
		return nil
	}
	if _, ok := a.tickets.GetByID(id); !ok {
		a.println("Ticket not found:", id)
		return nil
	}
	if err := a.tickets.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Ticket deleted:", id)
	return nil
}

// Stats prints the dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	st := a.tickets.CountByStatus()
	a.printf("Total:       %d\n", st.Total)
	a.printf("Pending:     %d\n", st.Pending)
	a.printf("In progress: %d\n", st.InProgress)
	a.printf("Resolved:    %d\n", st.Resolved)
	a.printf("Closed:      %d\n", st.Closed)
	return nil
}

// Settings configures the SMS alert channel.
func (a *App) Settings(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	cfg := a.settings.Get()
	a.printf("SMS alerts enabled: %v\nAdmin mobile: %s\nAPI key set: %v\n",
		cfg.Enabled, cfg.AdminMobile, cfg.APIKey != "")

	enabledStr, err := GetSimpleText(a.reader, "Enable SMS alerts? (yes/no, empty to keep)", a.out)
	if err != nil {
		return err
	}
	enabled := cfg.Enabled
	switch enabledStr {
	case "":
	case "yes", "y":
		enabled = true
	case "no", "n":
		enabled = false
	default:
		a.println("Please answer yes or no.")
		return nil
	}

	mobile, err := GetSimpleText(a.reader, "Admin mobile (10 digits, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if mobile == "" {
		mobile = cfg.AdminMobile
	} else if !validation.MobileRE.MatchString(mobile) {
		a.println("Mobile number must be exactly 10 digits.")
		return nil
	}

	apiKey, err := GetSimpleText(a.reader, "SMS API key (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if apiKey == "" {
		apiKey = cfg.APIKey
	}

	if err := a.settings.Update(enabled, mobile, apiKey); err != nil {
		return err
	}
	a.println("Settings saved.")
	return nil
}

// History prints the SMS delivery log, newest last.
func (a *App) History(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	history := a.settings.Get().History
	if len(history) == 0 {
		a.println("No SMS alerts sent yet.")
		return nil
	}
	for _, r := range history {
		a.printf("%s  %s  to %s  ticket %s\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.Status, maskedTo(r.To), r.TicketID)
	}
	return nil
}

// Export writes the full ticket table to an xlsx file in the state dir.
func (a *App) Export(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	f, err := export.TicketsWorkbook(a.tickets.List())
	if err != nil {
		return err
	}
	defer f.Close()

	path := filepath.Join(a.config.StateDir, "tickets-"+time.Now().Format("2006-01-02")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return err
	}
	a.println("Exported to", path)
	return nil
}

func maskedTo(mobile string) string {
	return sms.MaskMobile(mobile)
}
