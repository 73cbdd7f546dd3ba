// ABOUTME: Backend interface for snapshot persistence.
// ABOUTME: Two operations only; the Store never branches on backend identity.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been persisted yet.
// The Store treats it as a signal to start from DefaultSnapshot.
var ErrNotFound = errors.New("no persisted state")

// Backend persists the application snapshot as a single document.
// Implementations must be safe to call from the Store's save goroutine.
type Backend interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Close() error
}
