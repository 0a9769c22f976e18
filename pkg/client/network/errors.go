package network

import "errors"

// ErrConnectionClosedByServer is returned when the server closes the connection
type ErrConnectionClosedByServer struct {
	Reason string
}

func (e *ErrConnectionClosedByServer) Error() string {
	if e.Reason != "" {
		return "connection closed by server: " + e.Reason
	}
	return "connection closed by server"
}

// ErrTransportUnavailable is returned when sending on a transport that is not open
type ErrTransportUnavailable struct{}

func (e *ErrTransportUnavailable) Error() string {
	return "transport is not open"
}

func IsTransportUnavailable(err error) bool {
	var target *ErrTransportUnavailable
	return errors.As(err, &target)
}

func IsConnectionClosedByServer(err error) bool {
	var target *ErrConnectionClosedByServer
	return errors.As(err, &target)
}
