package domain

import "context"

// DoaRepository provides read-only access to the doa collection.
// Implemented by the Baserow client (network) and the snapshot store (offline).
type DoaRepository interface {
	// FetchAll returns the full, ordered record set in one read
	FetchAll(ctx context.Context) ([]Doa, error)
}

// SnapshotStore persists the last successful fetch for offline use
type SnapshotStore interface {
	SaveSnapshot(records []Doa) error
	LoadSnapshot() (*Snapshot, bool)
	Clear() error
	Close() error
}

// Navigator is the navigation collaborator.
// Paths have the form "/" (list) or "/doa/<id>" (detail).
type Navigator interface {
	NavigateTo(path string)
	GoBack()
}
