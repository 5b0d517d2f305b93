// Package speech delivers spoken announcements to connected browsers. The
// server side only routes announcement text; synthesis happens client-side
// where the voice capability lives.
package speech

import (
	"context"
	"log/slog"
	"time"

	"github.com/carewell/eldercare/internal/broker"
	"github.com/carewell/eldercare/internal/logging"
)

// sendTimeout bounds how long an announcement waits for a slow listener
// before being dropped.
const sendTimeout = 2 * time.Second

// Announcer speaks text to the user behind the given session token. A missing
// or unavailable voice never surfaces as an error; the announcement simply
// falls back to a silent no-op.
type Announcer interface {
	Announce(ctx context.Context, sessionToken string, text string)
}

// BrokerAnnouncer routes announcements through a ChannelBroker to whichever
// SSE stream has published itself under the session token.
type BrokerAnnouncer struct {
	broker *broker.ChannelBroker[string, string]
	logger *slog.Logger
}

func NewBrokerAnnouncer(b *broker.ChannelBroker[string, string], logger *slog.Logger) *BrokerAnnouncer {
	return &BrokerAnnouncer{
		broker: b,
		logger: logger,
	}
}

// Announce sends text to the session's speech stream and returns immediately;
// delivery runs in the background so a stalled listener never holds up the
// caller. When no stream is connected, or the listener does not accept the
// text within sendTimeout, the announcement is dropped with a log line.
func (a *BrokerAnnouncer) Announce(ctx context.Context, sessionToken string, text string) {
	// Delivery outlives the request that triggered it, so detach from the
	// request's cancellation while keeping its log attributes.
	ctx = context.WithoutCancel(ctx)
	ctx = logging.WithAttrs(ctx, slog.Int("announcement_length", len(text)))

	go func() {
		streamChannel, ok := <-a.broker.Subscribe(sessionToken)
		if !ok {
			a.logger.LogAttrs(ctx, slog.LevelDebug, "no speech stream connected, dropping announcement")
			return
		}

		select {
		case streamChannel <- text:
		case <-time.After(sendTimeout):
			a.logger.LogAttrs(ctx, slog.LevelWarn, "speech stream not accepting announcements, dropping")
		}
	}()
}

// NoopAnnouncer discards every announcement. It stands in when speech is
// disabled or in tests.
type NoopAnnouncer struct{}

func (NoopAnnouncer) Announce(context.Context, string, string) {}
