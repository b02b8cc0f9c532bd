package main

import (
	"bytes"
	"testing"

	"github.com/glowbook/admin-console/internal/session"
	"github.com/stretchr/testify/require"
)

func TestRouteFor(t *testing.T) {
	require.Equal(t, session.RouteLogin, routeFor("login"))
	require.Equal(t, session.RouteLogin, routeFor("verify-otp"))
	require.Equal(t, session.RouteDashboard, routeFor("badges"))
	require.Equal(t, session.RouteDashboard+"/salons", routeFor("salons"))
}

func TestNavigatorReportsChanges(t *testing.T) {
	var buf bytes.Buffer
	nav := newCLINavigator(session.RouteDashboard+"/orders", &buf)

	nav.Navigate(session.RouteLogin)
	nav.Navigate(session.RouteLogin)
	require.Equal(t, session.RouteLogin, nav.CurrentRoute())
	require.Equal(t, "→ signed out\n", buf.String())

	nav.Navigate(session.RouteDashboard)
	require.Equal(t, "→ signed out\n→ signed in\n", buf.String())
}
