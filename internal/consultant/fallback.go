package consultant

import (
	"context"
	"errors"
	"time"

	"github.com/luxesalon/salon-platform/internal/observability/metrics"
	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Fixed user-facing replies used when the backend cannot produce text.
const (
	EmptyReplyFallback = "I'm sorry, I couldn't generate a response at this time."
	ConnectionFallback = "I'm having trouble connecting to the consultation service. Please try again later."
)

// FallbackGateway wraps a Gateway with the fixed fallback-reply policy:
// callers always receive a success-shaped assistant message. An empty
// completion and a backend failure map to different fixed strings; the
// underlying error is logged, never propagated. The apology is recorded
// into the transcript while the session guard is still held, so a
// concurrent Send cannot slip in between the failure and its reply.
// Caller-input errors (blank text, busy session) still propagate so the
// surface can report them properly.
type FallbackGateway struct {
	gateway *Gateway
	metrics *metrics.ChatMetrics
	logger  *logging.Logger
}

// NewFallbackGateway creates a fallback-wrapped consultant gateway.
func NewFallbackGateway(gateway *Gateway, m *metrics.ChatMetrics, logger *logging.Logger) *FallbackGateway {
	if gateway == nil {
		panic("consultant: gateway required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackGateway{gateway: gateway, metrics: m, logger: logger}
}

// Send forwards to the gateway and converts backend failures into the
// fixed fallback replies, recording them in the session transcript so the
// thread reads like a normal conversation.
func (f *FallbackGateway) Send(ctx context.Context, sessionID, text string) (Message, error) {
	start := time.Now()
	var kind string
	msg, err := f.gateway.send(ctx, sessionID, text, func(sendErr error) (string, bool) {
		kind = "connection"
		reply := ConnectionFallback
		if errors.Is(sendErr, ErrEmptyCompletion) {
			kind = "empty"
			reply = EmptyReplyFallback
		}
		f.logger.Error("consultation backend failed, serving fallback reply",
			"session_id", sessionID,
			"kind", kind,
			"error", sendErr,
		)
		return reply, true
	})
	if err != nil {
		// Only caller-input errors reach here; backend failures were
		// recovered into a fallback reply above.
		f.metrics.ObserveRequest("rejected", time.Since(start).Seconds())
		return Message{}, err
	}
	if kind != "" {
		f.metrics.ObserveRequest("fallback", time.Since(start).Seconds())
		f.metrics.ObserveFallback(kind)
		return msg, nil
	}
	f.metrics.ObserveRequest("ok", time.Since(start).Seconds())
	return msg, nil
}

// History returns the session transcript.
func (f *FallbackGateway) History(ctx context.Context, sessionID string) ([]Message, error) {
	return f.gateway.History(ctx, sessionID)
}
