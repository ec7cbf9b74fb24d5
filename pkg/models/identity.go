// Package models holds shared domain types: request identity, path
// validation, and the records exchanged between the coordinator, agents,
// and services.
package models

import "errors"

// Identity carries the caller context threaded through every service and
// tool call: tenant scoping, the acting user, and the correlation ID that
// links all audit events of one user interaction.
type Identity struct {
	TenantID      string
	ActorID       string
	CorrelationID string

	// Admin grants cross-tenant list access. Regular requests never set it.
	Admin bool
}

// ErrMissingTenant is returned by services when the identity carries no
// tenant ID. Every persisted entity is tenant-owned, so this is always a
// caller bug.
var ErrMissingTenant = errors.New("identity has no tenant id")

// Validate checks the identity is usable for tenant-scoped operations.
func (id Identity) Validate() error {
	if id.TenantID == "" {
		return ErrMissingTenant
	}
	return nil
}
