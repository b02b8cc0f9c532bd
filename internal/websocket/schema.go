package websocket

import "github.com/glowbook/admin-console/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing    Action = "ping"
	ActionRefresh Action = "refresh"
)

// RequestEnvelope is every client message; only the action is read.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventBadges Event = "badges"
	EventError  Event = "error"
	EventPong   Event = "pong"
)

// BadgesResponse carries the latest navigation badge counts.
type BadgesResponse struct {
	Event Event              `json:"event"`
	Data  *model.BadgeCounts `json:"data"`
}

type ErrorResponse struct {
	Event  Event  `json:"event"`
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
