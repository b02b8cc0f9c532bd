package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/glowbook/admin-console/internal/apiclient"
	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/database"
	"github.com/glowbook/admin-console/internal/logger"
	"github.com/glowbook/admin-console/internal/service"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/rs/zerolog"
)

// app is everything a command needs.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	mgr *session.Manager
	svc *service.Services
	nav *cliNavigator
	in  *bufio.Reader
	out io.Writer
	err io.Writer

	// ttyFD is checked before prompting for a password without echo.
	ttyFD int
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(os.Stdout)
		return 0
	}

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.SetupWriter(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Open Session Store ────────────────────────────────────────────
	backend, err := database.OpenSessionStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open session store: %v\n", err)
		return 1
	}
	defer backend.Close()

	// ─── Wire Session, Client and Services ─────────────────────────────
	nav := newCLINavigator(routeFor(args[0]), os.Stderr)
	mgr := session.NewManager(backend.Store, nav, log)

	mode := apiclient.ModeProduction
	if cfg.IsDevelopment() {
		mode = apiclient.ModeDevelopment
	}
	client := apiclient.New(apiclient.Options{
		BaseURL:      cfg.APIURL,
		ProxyBaseURL: cfg.ProxyBaseURL,
		Mode:         mode,
		Timeout:      cfg.HTTPTimeout,
		Tokens:       mgr,
		Unauthorized: mgr,
		Logger:       log,
	})
	svc := service.New(client)
	mgr.UseAuth(svc.Auth)

	a := &app{
		cfg:   cfg,
		log:   log,
		mgr:   mgr,
		svc:   svc,
		nav:   nav,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		err:   os.Stderr,
		ttyFD: int(os.Stdin.Fd()),
	}

	if err := mgr.Init(ctx); err != nil {
		renderError(a.err, err)
		if !isAuthCommand(args[0]) {
			return 1
		}
	}

	if err := a.dispatch(ctx, args); err != nil {
		if apiclient.IsUnauthorized(err) && mgr.SessionExpired() {
			fmt.Fprintln(a.err, "Your session has expired. Please sign in again with `admin login`.")
			return 1
		}
		renderError(a.err, err)
		return 1
	}
	return 0
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	name, rest := args[0], args[1:]

	if cmd, ok := sessionCommands[name]; ok {
		return cmd.run(ctx, a, rest)
	}

	group, ok := resourceCommands[name]
	if !ok {
		printUsage(a.err)
		return fmt.Errorf("unknown command %q", name)
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	if len(rest) == 0 {
		printGroupUsage(a.err, name, group)
		return fmt.Errorf("%s: missing subcommand", name)
	}
	cmd, ok := group[rest[0]]
	if !ok {
		printGroupUsage(a.err, name, group)
		return fmt.Errorf("%s: unknown subcommand %q", name, rest[0])
	}
	return cmd.run(ctx, a, rest[1:])
}

func (a *app) requireSession() error {
	if a.mgr.State() != session.StateAuthenticated {
		return session.ErrNotAuthenticated
	}
	return nil
}

// command is one CLI verb.
type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admin <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session:")
	for _, name := range sortedKeys(sessionCommands) {
		fmt.Fprintf(w, "  %-12s %s\n", name, sessionCommands[name].usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resources (run `admin <resource>` for subcommands):")
	for _, name := range sortedKeys(resourceCommands) {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func printGroupUsage(w io.Writer, group string, cmds map[string]command) {
	fmt.Fprintf(w, "Usage: admin %s <subcommand>\n", group)
	for _, name := range sortedKeys(cmds) {
		fmt.Fprintf(w, "  %-10s %s\n", name, cmds[name].usage)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// errUsage marks argument errors that were already explained to the user.
var errUsage = errors.New("invalid arguments")

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
