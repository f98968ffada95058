// Package store persists named graph snapshots (the JSON bytes produced
// by graph/serialize.go) for the `save`/`load` CLI subcommands, with
// pluggable backends: [FileStore] for single-user CLI use, [MongoStore]
// for sharing snapshots across processes and machines.
//
// The Get/Set/Delete/List shape and the mutex-guarded single-directory
// JSON-file layout are adapted from the teacher's session.Store /
// session.FileStore (pkg/session in the teacher tree): same storage
// pattern, repurposed from ephemeral auth sessions to durable named graph
// snapshots, with the OAuth-specific state-token and GitHub-user concerns
// dropped (they have no equivalent in this domain).
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Record is a named, persisted graph snapshot.
type Record struct {
	Name      string    `json:"name"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the interface for named-graph persistence backends.
type Store interface {
	// Get retrieves a record by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*Record, error)
	// Set stores (or overwrites) a record.
	Set(ctx context.Context, rec *Record) error
	// Delete removes a record. A missing record is not an error.
	Delete(ctx context.Context, name string) error
	// List returns every stored record's name, ascending.
	List(ctx context.Context) ([]string, error)
	// Close releases any held resources.
	Close() error
}
