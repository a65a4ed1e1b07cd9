package adapter

import "errors"

var (
	// ErrNotFound means the application, environment or profile does not exist.
	ErrNotFound = errors.New("configuration not found")
	// ErrBadRequest means the service rejected the request parameters.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized means the caller's credentials were missing, invalid or
	// lacked permission.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrThrottled means the service rate-limited the request.
	ErrThrottled = errors.New("request throttled")
	// ErrInternal means the service failed on its side.
	ErrInternal = errors.New("service internal error")
	// ErrRejected covers any other error response from the service.
	ErrRejected = errors.New("request rejected")
	// ErrTransport means no response was received (network, DNS, timeout,
	// credential resolution).
	ErrTransport = errors.New("transport error")
	// ErrEmptySessionToken means a session was opened without a token.
	ErrEmptySessionToken = errors.New("empty configuration session token")
)
