package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
	"github.com/google/uuid"
)

// Notifier sends ticket alerts through an SMS gateway. Every configuration
// gap or delivery failure is reported to the caller as an error, but callers
// must treat it as informational: a failed alert never rolls back the ticket
// that triggered it.
type Notifier struct {
	settings   *SettingsStore
	log        logging.Logger
	gatewayURL string
	httpClient *http.Client
}

// NewNotifier returns a notifier posting to the given gateway URL.
func NewNotifier(settings *SettingsStore, log logging.Logger, gatewayURL string, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		settings:   settings,
		log:        log.With("component", "sms"),
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendAlert delivers a new-ticket alert to the configured admin mobile.
// Returns the history record on success. Fails with ErrNotifierDisabled when
// the channel is off, ErrNotifierNotConfigured on any configuration gap, and
// a wrapped ErrNotifierDelivery on gateway errors.
func (n *Notifier) SendAlert(ctx context.Context, ticket *models.Ticket) (*Record, error) {
	cfg := n.settings.Get()

	if !cfg.Enabled {
		return nil, common.ErrNotifierDisabled
	}
	if cfg.AdminMobile == "" || cfg.APIKey == "" {
		return nil, common.ErrNotifierNotConfigured
	}
	if !validation.MobileRE.MatchString(cfg.AdminMobile) {
		return nil, fmt.Errorf("%w: admin mobile must be exactly 10 digits", common.ErrNotifierNotConfigured)
	}

	message := TicketMessage(ticket)
	if err := n.deliver(ctx, cfg, message); err != nil {
		n.log.Warn(ctx, "sms delivery failed", "ticket", ticket.ID, "error", err)
		return nil, err
	}

	record := Record{
		ID:        uuid.NewString(),
		To:        cfg.AdminMobile,
		Message:   message,
		Timestamp: time.Now(),
		Status:    "sent",
		Type:      "ticket_created",
		TicketID:  ticket.ID,
	}
	if err := n.settings.AppendHistory(record); err != nil {
		n.log.Warn(ctx, "sms history not persisted", "error", err)
	}

	n.log.Info(ctx, "sms alert sent", "ticket", ticket.ID, "to", MaskMobile(cfg.AdminMobile))
	return &record, nil
}

func (n *Notifier) deliver(ctx context.Context, cfg Settings, message string) error {
	form := url.Values{}
	form.Set("numbers", cfg.AdminMobile)
	form.Set("message", message)
	form.Set("route", "q")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNotifierDelivery, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", cfg.APIKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNotifierDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: gateway status %d: %s", common.ErrNotifierDelivery, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// shortTypeLabels keeps the SMS body compact; the catalog labels are too
// long for a 160-character message.
var shortTypeLabels = map[string]string{
	"zenox_exam_not_found":        "Exam Not Found",
	"zenox_questions_not_visible": "Questions Not Visible",
	"technical_issue":             "Technical Issue",
	"other":                       "Other",
}

func shortTypeLabel(value string) string {
	if l, ok := shortTypeLabels[value]; ok {
		return l
	}
	return value
}

// TicketMessage renders the alert body for a created ticket.
func TicketMessage(t *models.Ticket) string {
	var b strings.Builder
	b.WriteString("New Ticket Alert\n\n")
	fmt.Fprintf(&b, "ID: #%s\n", shortID(t.ID))
	fmt.Fprintf(&b, "Type: %s\n", shortTypeLabel(t.TicketType))
	fmt.Fprintf(&b, "Priority: %s\n", strings.ToUpper(string(t.Priority)))
	if t.StudentName != "" {
		fmt.Fprintf(&b, "Student: %s\n", t.StudentName)
	}
	fmt.Fprintf(&b, "\nBy: %s\n", t.CreatedBy)
	fmt.Fprintf(&b, "Time: %s", t.CreatedAt.Format("15:04:05"))
	return b.String()
}

// shortID keeps the last six characters of a ticket id for display.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// MaskMobile hides the middle digits of a mobile number for logs and
// user-facing confirmations.
func MaskMobile(mobile string) string {
	if len(mobile) < 6 {
		return mobile
	}
	return mobile[:3] + "****" + mobile[len(mobile)-3:]
}
