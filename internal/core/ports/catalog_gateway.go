package ports

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/catalog"
)

// ErrSnapshotUnavailable marks a catalog or shipping snapshot that cannot be
// loaded at all. It is a configuration fault, never a per-field error.
var ErrSnapshotUnavailable = errors.New("catalog snapshot unavailable")

// CatalogGateway is the read-only view of the authoritative catalog.
//
// Snapshot returns the current products and shipping methods as one value.
// Callers look everything up in the same Snapshot; an id missing from it is
// "not found", while a catalog that cannot be read at all returns an error
// wrapping ErrSnapshotUnavailable.
type CatalogGateway interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}
