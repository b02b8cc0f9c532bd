package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/dashboard"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/glowbook/admin-console/internal/worker"
	"golang.org/x/term"
)

var sessionCommands = map[string]command{
	"login":      {usage: "[identifier]           sign in (password is prompted)", run: cmdLogin},
	"signup":     {usage: "--name --email [--phone] register an admin account", run: cmdSignup},
	"verify-otp": {usage: "<email> <code>         confirm a registration", run: cmdVerifyOTP},
	"resend-otp": {usage: "<email>                email a new code", run: cmdResendOTP},
	"logout":     {usage: "                       clear the stored session", run: cmdLogout},
	"refresh":    {usage: "                       exchange the refresh token", run: cmdRefresh},
	"whoami":     {usage: "                       show the signed-in admin", run: cmdWhoami},
	"dashboard":  {usage: "                       overview, recent bookings, pending salons", run: cmdDashboard},
	"badges":     {usage: "[--watch]              navigation badge counts", run: cmdBadges},
}

// parseFlags parses fs from args, allowing flags and positional arguments
// in any order, and returns the positional ones.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, errUsage
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	return fs
}

func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.err, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo when stdin is a terminal.
func (a *app) promptPassword(label string) (string, error) {
	fd := a.ttyFD
	if !term.IsTerminal(fd) {
		return a.prompt(label)
	}
	fmt.Fprint(a.err, label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(a.err)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "login")
	pos, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	identifier := ""
	if len(pos) > 0 {
		identifier = pos[0]
	} else if identifier, err = a.prompt("Email or phone: "); err != nil {
		return err
	}
	password, err := a.promptPassword("Password: ")
	if err != nil {
		return err
	}

	user, err := a.mgr.Login(ctx, identifier, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func cmdSignup(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "signup")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	password, err := a.promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	resp, err := a.mgr.Signup(ctx, model.SignupRequest{
		Name:     *name,
		Email:    *email,
		Phone:    *phone,
		Password: password,
	})
	if err != nil {
		return err
	}
	printMessage(a.out, resp, "Account created.")
	fmt.Fprintf(a.out, "Check %s for a code, then run: admin verify-otp %s <code>\n", *email, *email)
	return nil
}

func cmdVerifyOTP(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: verify-otp <email> <code>", errUsage)
	}
	resp, err := a.mgr.VerifyOTP(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printMessage(a.out, resp, "Email verified.")
	fmt.Fprintln(a.out, "You can now sign in with: admin login")
	return nil
}

func cmdResendOTP(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: resend-otp <email>", errUsage)
	}
	resp, err := a.mgr.ResendOTP(ctx, args[0])
	if err != nil {
		return err
	}
	printMessage(a.out, resp, "A new code has been sent.")
	return nil
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.mgr.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func cmdRefresh(ctx context.Context, a *app, _ []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if err := a.mgr.RefreshToken(ctx); err != nil {
		return err
	}
	printExpiry(ctx, a)
	return nil
}

func cmdWhoami(ctx context.Context, a *app, _ []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	user := a.mgr.User()
	fmt.Fprintf(a.out, "%s <%s>\nrole: %s\nid:   %s\n", user.Name, user.Email, user.Role, user.ID)
	printExpiry(ctx, a)
	return nil
}

func printExpiry(ctx context.Context, a *app) {
	exp, err := a.mgr.ExpiresAt(ctx)
	switch {
	case errors.Is(err, session.ErrNoExpiry):
		fmt.Fprintln(a.out, "token does not expire")
	case err != nil:
		a.log.Debug().Err(err).Msg("Token expiry unreadable")
	default:
		fmt.Fprintf(a.out, "token expires %s (in %s)\n", exp.Format(time.RFC3339), time.Until(exp).Round(time.Second))
	}
}

func cmdDashboard(ctx context.Context, a *app, _ []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	loader := dashboard.NewLoader(a.svc.Analytics, a.svc.Bookings, a.svc.Salons, a.log)
	o := loader.Overview(ctx)
	renderOverview(a.out, o)

	// A 401 on any slice already tore the session down.
	for _, err := range []error{o.StatsErr, o.RecentBookingsErr, o.PendingSalonsErr, o.BadgesErr} {
		if apiclient.IsUnauthorized(err) {
			return err
		}
	}
	return nil
}

func cmdBadges(ctx context.Context, a *app, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := newFlagSet(a, "badges")
	watch := fs.Bool("watch", false, "keep polling until interrupted")
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}

	var pollErr error
	handle := func(counts *model.BadgeCounts, err error) bool {
		if err != nil {
			if apiclient.IsUnauthorized(err) || !*watch {
				pollErr = err
				return false
			}
			renderError(a.err, err)
			return true
		}
		renderBadges(a.out, counts, *watch)
		return *watch
	}

	worker.NewBadgePoller(a.svc.Analytics, a.cfg.BadgePollInterval, handle, a.log).
		WithRefresher(a.mgr).
		Start(ctx)
	return pollErr
}

func printMessage(w io.Writer, resp *model.MessageResponse, fallback string) {
	if resp != nil && resp.Message != "" {
		fmt.Fprintln(w, resp.Message)
		return
	}
	fmt.Fprintln(w, fallback)
}
