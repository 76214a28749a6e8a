package sources

import "fmt"

// All fetch and resolve failures are terminal for the operation that raised
// them: nothing is retried internally and nothing below is ever cached, so a
// retry always goes back to the network.

// ParseError wraps malformed JSON returned by a remote host.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse remote JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError means the host has no usable resource for the given id,
// either a 404 or a resource with no manifest file in it.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no manifest found for %q", e.ID)
}

// AuthError means a required credential is missing from configuration. No
// network call is attempted in that case.
type AuthError struct {
	Credential string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("missing credential %s", e.Credential)
}

// RemoteError is a live call the host rejected, either via HTTP status or via
// the response's own success flag (Reason "api-rejected").
type RemoteError struct {
	Status int
	Reason string
}

func (e *RemoteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("remote rejected request: %s", e.Reason)
	}
	return fmt.Sprintf("remote returned status %d", e.Status)
}

// FormatError means the response decoded fine but did not have the expected
// shape.
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected response shape: %s", e.Field)
}

// EmptyResultError means the fetch succeeded but filtering left zero usable
// pages.
type EmptyResultError struct {
	ID string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no image pages in %q", e.ID)
}

// UnsupportedSourceError means no resolver rule matched the descriptor.
type UnsupportedSourceError struct {
	Descriptor string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported source descriptor %q", e.Descriptor)
}
