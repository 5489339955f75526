package telemetry

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultGracePeriod bounds how long a caller-visible response waits on
// telemetry before proceeding without it.
const DefaultGracePeriod = 250 * time.Millisecond

// Dispatcher sends events fire-and-forget with a bounded join: the send runs
// in the background, the caller waits at most the grace period, and sink
// failures are logged rather than propagated. Observability must never
// affect user-facing correctness.
type Dispatcher struct {
	sink  Sink
	grace time.Duration
	log   zerolog.Logger
}

// NewDispatcher wraps a sink with bounded-join dispatch
func NewDispatcher(sink Sink, grace time.Duration, log zerolog.Logger) *Dispatcher {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Dispatcher{sink: sink, grace: grace, log: log}
}

// Dispatch spawns the send and waits up to the grace period. The background
// task keeps its own timeout independent of the caller's context, so a
// response already returned does not cancel the send mid-flight.
func (d *Dispatcher) Dispatch(ev Event) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				d.log.Error().Interface("panic", r).Str("trace_id", ev.TraceID).Msg("telemetry send panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := d.sink.Send(ctx, ev); err != nil {
			d.log.Warn().Err(err).Str("trace_id", ev.TraceID).Str("event", ev.Name).Msg("telemetry send failed")
		}
	}()

	select {
	case <-done:
	case <-time.After(d.grace):
	}
}
