// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/delivery layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTransientStore indicates a temporary store failure worth retrying.
	ErrTransientStore = errors.New("transient store error")

	// ErrBufferOverflow indicates a connection's outbound buffer was full.
	// The connection is closed; the client recovers through resume.
	ErrBufferOverflow = errors.New("outbound buffer overflow")

	// ErrConnClosed indicates a send on an already closed connection.
	ErrConnClosed = errors.New("connection closed")

	// ErrResyncRequired indicates the replay window was exceeded and the
	// client must perform a full refresh through the CRUD layer.
	ErrResyncRequired = errors.New("resync required")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTooManyStreams indicates the per-user concurrent stream cap was hit.
	ErrTooManyStreams = errors.New("too many concurrent streams")
)
