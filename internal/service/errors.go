package service

import "errors"

// Service-level errors shared across resource services.
var (
	// ErrNotOwner is returned when an authenticated principal attempts to
	// mutate or delete a post or comment owned by another user. Distinct
	// from authentication failure: the request is authenticated, the
	// principal simply lacks rights over this specific instance.
	ErrNotOwner = errors.New("principal is not the owner of this resource")

	// ErrNoPrincipal indicates that an operation requiring an authenticated
	// principal was reached without one. The authentication gate must run
	// before any ownership-checked operation, so this is an internal
	// invariant violation, not a client error.
	ErrNoPrincipal = errors.New("no authenticated principal in context")
)
