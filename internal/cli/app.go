// Package cli is the interactive view layer of the helpdesk: a REPL that
// drives the account and ticket stores and renders their state. The stores
// never navigate or print; every user-facing decision lives here.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/accounts"
	"github.com/dmitrijs2005/helpdesk/internal/config"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/sms"
	"github.com/dmitrijs2005/helpdesk/internal/storage"
	"github.com/dmitrijs2005/helpdesk/internal/tickets"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	accounts *accounts.Store
	tickets  *tickets.Store
	settings *sms.SettingsStore
	notifier *sms.Notifier

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the snapshot store, the two data stores, and the notifier.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	fileStore, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	accountStore, err := accounts.NewStore(fileStore, log, []byte(cfg.SecretKey), cfg.SessionTokenValidity, cfg.AdminMobile)
	if err != nil {
		return nil, err
	}
	ticketStore, err := tickets.NewStore(fileStore, log)
	if err != nil {
		return nil, err
	}
	settings, err := sms.NewSettingsStore(fileStore)
	if err != nil {
		return nil, err
	}
	notifier := sms.NewNotifier(settings, log, cfg.SMSGatewayURL, cfg.SMSTimeout)

	return &App{
		config:   cfg,
		log:      log,
		accounts: accountStore,
		tickets:  ticketStore,
		settings: settings,
		notifier: notifier,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// getStatus renders the prompt suffix: the logged-in user and their role.
func (a *App) getStatus() string {
	session, ok := a.accounts.CurrentSession()
	if !ok {
		return ""
	}
	return "(" + session.Account.Username + " " + string(session.Account.Role) + ")"
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.accounts.Role() == models.RoleAdmin
}

// session returns the active session, printing a hint when there is none.
func (a *App) session() (*models.Session, bool) {
	session, ok := a.accounts.CurrentSession()
	if !ok {
		a.println("Please log in first.")
	}
	return session, ok
}
