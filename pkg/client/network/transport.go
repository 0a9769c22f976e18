package network

import "context"

// Transport is the outbound half of a connection to the game server.
// Inbound frames are delivered to the queue the transport was created with.
type Transport interface {
	// Send hands a single text frame to the connection without waiting for
	// it to be written. It returns *ErrTransportUnavailable when the
	// connection is not open.
	Send(ctx context.Context, b []byte) error
	// IsOpen reports whether frames can currently be sent.
	IsOpen() bool
	// Close closes the connection. It is safe to call more than once.
	Close() error
}
