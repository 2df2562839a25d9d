package stream

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"fraudwatch/internal/types"
	"fraudwatch/pkg/log"
)

// WSConfig configures the WebSocket stream source.
type WSConfig struct {
	URL              string
	ReconnectDelay   time.Duration
	PingInterval     time.Duration
	PongWait         time.Duration
	WriteWait        time.Duration
	HandshakeTimeout time.Duration
}

// WSSource subscribes to the backend's transaction topic over a WebSocket.
// After the initial connect succeeds it keeps the subscription alive on
// its own: fixed-delay redial on read failure and ping/pong keep-alive in
// both directions.
type WSSource struct {
	cfg    WSConfig
	logger log.Logger

	// connecting guards against re-entrant Connect calls; it stays set
	// for the whole subscription lifetime.
	connecting atomic.Bool
	active     atomic.Bool

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWSSource creates a WebSocket source. Zero durations fall back to
// conservative defaults.
func NewWSSource(cfg WSConfig, logger log.Logger) *WSSource {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 5 * time.Second
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 4 * time.Second
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = 10 * time.Second
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}
	return &WSSource{cfg: cfg, logger: logger}
}

// Connect dials the stream endpoint and starts delivering events to
// onEvent. It returns once the dial is acknowledged. A concurrent or
// repeated Connect returns ErrAlreadyConnected.
func (s *WSSource) Connect(ctx context.Context, onEvent Handler) error {
	if !s.connecting.CompareAndSwap(false, true) {
		return ErrAlreadyConnected
	}

	conn, err := s.dial(ctx)
	if err != nil {
		s.connecting.Store(false)
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.conn = conn
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	s.active.Store(true)
	s.logger.Infof(ctx, "Connected to transaction stream at %s", s.cfg.URL)

	go s.run(runCtx, conn, onEvent, done)

	return nil
}

// Disconnect tears down the subscription and waits for the delivery loop
// to drain. Safe to call repeatedly or before Connect.
func (s *WSSource) Disconnect() {
	s.mu.Lock()
	cancel := s.cancel
	conn := s.conn
	done := s.done
	s.cancel = nil
	s.conn = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	if conn != nil {
		conn.Close()
	}
	<-done

	s.logger.Info(context.Background(), "Disconnected from transaction stream")
}

// Connected reports whether the subscription is currently live.
func (s *WSSource) Connected() bool {
	return s.active.Load()
}

func (s *WSSource) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: s.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// run reads events off the current connection and redials with a fixed
// delay whenever it drops, until the context is cancelled.
func (s *WSSource) run(ctx context.Context, conn *websocket.Conn, onEvent Handler, done chan struct{}) {
	defer close(done)
	defer s.active.Store(false)
	defer s.connecting.Store(false)

	for {
		s.consume(ctx, conn, onEvent)
		conn.Close()

		if ctx.Err() != nil {
			return
		}

		s.active.Store(false)
		s.logger.Warnf(ctx, "Stream connection lost, reconnecting in %s", s.cfg.ReconnectDelay)

		var err error
		conn, err = s.redial(ctx)
		if err != nil {
			return
		}

		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()
		s.active.Store(true)
		s.logger.Info(ctx, "Reconnected to transaction stream")
	}
}

// consume reads one connection until it fails or the context ends. Each
// text frame carries one JSON-encoded wire event; malformed frames are
// logged and skipped.
func (s *WSSource) consume(ctx context.Context, conn *websocket.Conn, onEvent Handler) {
	conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
		return nil
	})

	pingDone := make(chan struct{})
	defer close(pingDone)
	go s.pingLoop(ctx, conn, pingDone)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Errorf(ctx, "Stream read error: %v", err)
			}
			return
		}

		var event types.WireEvent
		if err := json.Unmarshal(message, &event); err != nil {
			s.logger.Warnf(ctx, "Skipping malformed stream frame: %v", err)
			continue
		}

		onEvent(&event)
	}
}

// pingLoop keeps the server side of the keep-alive contract.
func (s *WSSource) pingLoop(ctx context.Context, conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.cfg.WriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// redial retries the dial with a fixed delay until it succeeds or the
// context is cancelled.
func (s *WSSource) redial(ctx context.Context) (*websocket.Conn, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cfg.ReconnectDelay):
		}

		conn, err := s.dial(ctx)
		if err == nil {
			return conn, nil
		}
		s.logger.Warnf(ctx, "Stream redial failed: %v", err)
	}
}
