package probe

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// TCP checks that a TCP connection to Address can be established.
type TCP struct {
	Address string        // host:port to connect to
	Timeout time.Duration // connection timeout (default 5s)
	Dialer  Dialer        // injected for testing; nil uses net.Dialer
}

// Name returns "tcp: <address>".
func (p *TCP) Name() string {
	return "tcp: " + p.Address
}

// Check dials Address and closes the connection.
func (p *TCP) Check(ctx context.Context) (bool, error) {
	if p.Address == "" {
		return false, ErrMissingTarget
	}

	ctx, cancel := context.WithTimeout(ctx, orDefault(p.Timeout))
	defer cancel()

	dialer := p.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	conn, err := dialer.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		return false, fmt.Errorf("connection to %s failed: %w", p.Address, err)
	}
	_ = conn.Close()
	return true, nil
}
