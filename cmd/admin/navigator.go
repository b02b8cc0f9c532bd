package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/glowbook/admin-console/internal/session"
)

// cliNavigator tracks the route a command is acting on. There is no page to
// change, so navigation is reported on stderr.
type cliNavigator struct {
	mu      sync.Mutex
	current string
	out     io.Writer
}

func newCLINavigator(start string, out io.Writer) *cliNavigator {
	return &cliNavigator{current: start, out: out}
}

func (n *cliNavigator) CurrentRoute() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *cliNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == route {
		return
	}
	n.current = route
	switch route {
	case session.RouteLogin:
		fmt.Fprintln(n.out, "→ signed out")
	case session.RouteDashboard:
		fmt.Fprintln(n.out, "→ signed in")
	}
}

var authCommands = map[string]bool{
	"login":      true,
	"signup":     true,
	"verify-otp": true,
	"resend-otp": true,
	"logout":     true,
}

func isAuthCommand(name string) bool {
	return authCommands[name]
}

// routeFor maps a command to the console route it stands in for. Auth
// commands run on the login screen, so a 401 there clears storage without
// redirecting.
func routeFor(name string) string {
	if isAuthCommand(name) {
		return session.RouteLogin
	}
	if name == "dashboard" || name == "whoami" || name == "refresh" || name == "badges" {
		return session.RouteDashboard
	}
	return session.RouteDashboard + "/" + name
}
