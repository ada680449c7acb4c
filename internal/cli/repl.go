package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Forgot(ctx context.Context) error

	NewTicket(ctx context.Context) error
	List(ctx context.Context, status string) error
	Show(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error

	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) error
	Settings(ctx context.Context) error
	History(ctx context.Context) error
	Export(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the helpdesk commands.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The available command set follows the session state: logged-out users can
// only register, log in, or recover a password; logged-in users manage their
// own tickets and profile; admins additionally triage, configure alerts, and
// export.
//
// Any errors returned by command handlers are printed here and the loop
// continues; no handler failure is fatal to the REPL.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprintln(out, "Welcome to the helpdesk CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(out, "hd %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			printHelp(a, out)
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "forgot":
			err = a.Forgot(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "new":
			err = a.NewTicket(ctx)
		case "list":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			err = a.List(ctx, status)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: show <id>")
				continue
			}
			err = a.Show(ctx, args[0])
		case "profile":
			err = a.Profile(ctx)
		case "passwd":
			err = a.Passwd(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: edit <id>")
				continue
			}
			err = a.Edit(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])
		case "stats":
			err = a.Stats(ctx)
		case "settings":
			err = a.Settings(ctx)
		case "history":
			err = a.History(ctx)
		case "export":
			err = a.Export(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

func printHelp(a execIface, out io.Writer) {
	if !a.isLoggedIn() {
		fmt.Fprintln(out, "Available commands: register, login, forgot, exit")
		return
	}
	if a.isAdmin() {
		fmt.Fprintln(out, "Available commands: new, list [status], show <id>, edit <id>, delete <id>, stats, settings, history, export, profile, passwd, logout, exit")
		return
	}
	fmt.Fprintln(out, "Available commands: new, list [status], show <id>, profile, passwd, logout, exit")
}
