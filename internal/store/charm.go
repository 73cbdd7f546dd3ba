// ABOUTME: Charm KV backend persisting the snapshot under one well-known key.
// ABOUTME: Writes auto-sync to Charm Cloud unless the database is read-only.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "plate"
	charmHost   = "charm.2389.dev"

	// StateKey is the single key the whole snapshot lives under.
	StateKey = "plate:state"
)

// CharmBackend stores the snapshot blob in a Charm KV (badger-backed)
// database with E2E-encrypted cloud sync.
type CharmBackend struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.Mutex
}

var _ Backend = (*CharmBackend)(nil)

// OpenCharm opens the Charm KV database. Remote data is pulled on startup
// unless another process holds the write lock.
func OpenCharm() (*CharmBackend, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	b := &CharmBackend{kv: db, autoSync: true}
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return b, nil
}

// Load reads the snapshot blob. A missing key reports ErrNotFound so the
// caller can fall back to defaults.
func (b *CharmBackend) Load(ctx context.Context) (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := b.kv.Get([]byte(StateKey))
	if err != nil || len(data) == 0 {
		return nil, ErrNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot blob and syncs if enabled.
func (b *CharmBackend) Save(ctx context.Context, snap *Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := b.kv.Set([]byte(StateKey), data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if b.autoSync && !b.kv.IsReadOnly() {
		_ = b.kv.Sync()
	}
	return nil
}

// Close closes the KV database.
func (b *CharmBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv != nil {
		return b.kv.Close()
	}
	return nil
}

// IsReadOnly reports whether another process holds the write lock.
func (b *CharmBackend) IsReadOnly() bool {
	return b.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (b *CharmBackend) Sync() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kv.IsReadOnly() {
		return nil
	}
	return b.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (b *CharmBackend) SetAutoSync(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (b *CharmBackend) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kv.Reset()
}

// AccountID returns the Charm user ID for the current account.
func (b *CharmBackend) AccountID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}
