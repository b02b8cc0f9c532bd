package session

// Routes the session layer navigates between.
const (
	RouteLogin     = "/auth"
	RouteDashboard = "/dashboard"
)

// Navigator abstracts the console's current location.
type Navigator interface {
	CurrentRoute() string
	Navigate(route string)
}
