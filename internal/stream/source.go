// Package stream owns the long-lived subscription to the transaction push
// endpoint. A Source delivers one wire event per callback invocation; it
// makes no exactly-once promise and no ordering promise across reconnects.
package stream

import (
	"context"
	"errors"

	"fraudwatch/internal/types"
)

// ErrAlreadyConnected is returned by Connect while another subscription is
// pending or active. Connecting twice must never create a duplicate
// subscription.
var ErrAlreadyConnected = errors.New("stream: already connected")

// Handler receives one decoded wire event per delivery. Handlers must not
// block; the source does not buffer behind them.
type Handler func(e *types.WireEvent)

// Source is a single long-lived subscription to a push-messaging endpoint.
type Source interface {
	// Connect establishes the subscription and returns once connectivity
	// is acknowledged, or with an error when it cannot be established.
	Connect(ctx context.Context, onEvent Handler) error

	// Disconnect tears the subscription down. Safe to call at any time,
	// including before Connect; no deliveries happen afterwards.
	Disconnect()

	// Connected reports whether the subscription is currently live.
	Connected() bool
}
