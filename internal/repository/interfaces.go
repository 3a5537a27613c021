// Package repository persists store snapshot payloads. The store itself is
// in-memory for the session; durability happens only through this
// collaborator via whole-payload hand-off.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jthornhill/wayfare/internal/store"
)

// ErrNotFound is returned when no snapshot row matches the request.
var ErrNotFound = errors.New("not found")

// SnapshotMeta describes a stored snapshot without its payload.
type SnapshotMeta struct {
	ID            string
	Version       int
	CreatedAt     time.Time
	ActivityCount int
}

type SnapshotRepo interface {
	Save(ctx context.Context, p *store.SnapshotPayload) error
	Get(ctx context.Context, id string) (*store.SnapshotPayload, error)
	Latest(ctx context.Context) (*store.SnapshotPayload, error)
	List(ctx context.Context, limit int) ([]SnapshotMeta, error)
	Delete(ctx context.Context, id string) error
	// Prune removes all but the newest keep snapshots.
	Prune(ctx context.Context, keep int) (int, error)
}
