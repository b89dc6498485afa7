package pptx2pdf

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

// Connection retry defaults. The engine's startup latency is variable
// and not observable from outside, so bounded retry against the control
// endpoint is the only synchronization primitive available.
const (
	defaultConnectAttempts = 10
	defaultConnectBackoff  = 1 * time.Second
	dialTimeout            = 5 * time.Second
)

// dialFunc abstracts socket dialing to enable testing without a
// listening engine.
type dialFunc func(ctx context.Context, addr string) (net.Conn, error)

func netDial(ctx context.Context, addr string) (net.Conn, error) {
	d := net.Dialer{Timeout: dialTimeout}
	return d.DialContext(ctx, "tcp", addr)
}

// ControlHandle is a negotiated connection into a running engine
// session. It is single-use: valid only until the session ends.
type ControlHandle struct {
	conn   net.Conn
	closed bool
}

// Close releases the control connection. Safe to call more than once.
func (h *ControlHandle) Close() error {
	if h == nil || h.closed || h.conn == nil {
		return nil
	}
	h.closed = true
	return h.conn.Close()
}

// Resolver establishes the control connection to a running engine,
// retrying while the endpoint refuses connections.
type Resolver struct {
	attempts int
	backoff  time.Duration
	dial     dialFunc
}

// NewResolver creates a Resolver with the default retry budget.
func NewResolver() *Resolver {
	return &Resolver{
		attempts: defaultConnectAttempts,
		backoff:  defaultConnectBackoff,
		dial:     netDial,
	}
}

// Connect negotiates a connection to the control endpoint. A refused
// connection means the engine is still starting and is retried after a
// backoff, up to the attempt budget. Any other dial failure is not a
// startup symptom and propagates immediately.
func (r *Resolver) Connect(ctx context.Context, addr string) (*ControlHandle, error) {
	for attempt := 1; attempt <= r.attempts; attempt++ {
		conn, err := r.dial(ctx, addr)
		if err == nil {
			return &ControlHandle{conn: conn}, nil
		}

		if !isRefused(err) {
			return nil, fmt.Errorf("%w: %v", ErrConnect, err)
		}

		if attempt == r.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff):
		}
	}
	return nil, fmt.Errorf("%w: endpoint %s refused %d handshake attempts", ErrConnect, addr, r.attempts)
}

// Probe checks that the control endpoint accepts connections, then
// discards the connection. Used by the supervisor as a readiness check
// after launching the engine, replacing a fixed warm-up sleep.
func (r *Resolver) Probe(ctx context.Context, addr string) error {
	h, err := r.Connect(ctx, addr)
	if err != nil {
		return err
	}
	return h.Close()
}

// isRefused reports whether a dial error is a connection refusal.
func isRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}
