package worker

import (
	"context"
	"time"

	"github.com/glowbook/admin-console/internal/metrics"
	"github.com/glowbook/admin-console/internal/model"
	"github.com/rs/zerolog"
)

// DefaultRefreshSkew is how close to expiry the poller refreshes the token.
const DefaultRefreshSkew = 2 * time.Minute

// BadgeSource returns the current navigation badge counts.
type BadgeSource interface {
	Badges(ctx context.Context) (*model.BadgeCounts, error)
}

// Refresher keeps the access token alive between polls.
type Refresher interface {
	NeedsRefresh(ctx context.Context, skew time.Duration) bool
	RefreshToken(ctx context.Context) error
}

// BadgeHandler receives every poll result. Returning false stops the poller.
type BadgeHandler func(counts *model.BadgeCounts, err error) bool

// BadgePoller fetches badge counts on a fixed interval for one subscriber.
type BadgePoller struct {
	source    BadgeSource
	interval  time.Duration
	handle    BadgeHandler
	refresher Refresher
	trigger   <-chan struct{}
	log       zerolog.Logger
}

// NewBadgePoller creates a new BadgePoller.
func NewBadgePoller(source BadgeSource, interval time.Duration, handle BadgeHandler, log zerolog.Logger) *BadgePoller {
	return &BadgePoller{
		source:   source,
		interval: interval,
		handle:   handle,
		log:      log.With().Str("component", "badge_poller").Logger(),
	}
}

// WithRefresher refreshes the session token ahead of expiry before each poll.
func (p *BadgePoller) WithRefresher(r Refresher) *BadgePoller {
	p.refresher = r
	return p
}

// WithTrigger polls out of band whenever trigger receives. Send on a
// buffered channel without blocking so bursts collapse into one poll.
func (p *BadgePoller) WithTrigger(trigger <-chan struct{}) *BadgePoller {
	p.trigger = trigger
	return p
}

// Start polls once immediately and then on every tick until ctx is done or
// the handler returns false. Call in a goroutine.
func (p *BadgePoller) Start(ctx context.Context) {
	p.log.Debug().Dur("interval", p.interval).Msg("Poller started")
	defer p.log.Debug().Msg("Poller stopped")

	if !p.poll(ctx) {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.poll(ctx) {
				return
			}
		case <-p.trigger:
			if !p.poll(ctx) {
				return
			}
		}
	}
}

func (p *BadgePoller) poll(ctx context.Context) bool {
	if p.refresher != nil && p.refresher.NeedsRefresh(ctx, DefaultRefreshSkew) {
		if err := p.refresher.RefreshToken(ctx); err != nil {
			p.log.Warn().Err(err).Msg("Token refresh failed")
			metrics.BadgePollsTotal.WithLabelValues("error").Inc()
			return p.handle(nil, err)
		}
	}

	counts, err := p.source.Badges(ctx)
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		metrics.BadgePollsTotal.WithLabelValues("error").Inc()
		p.log.Debug().Err(err).Msg("Badge poll failed")
	} else {
		metrics.BadgePollsTotal.WithLabelValues("ok").Inc()
	}
	return p.handle(counts, err)
}
