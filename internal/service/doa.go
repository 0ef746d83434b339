package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/goresan/goresan/internal/domain"
)

// DoaService is the repository the controllers talk to. It reads the
// remote record store and keeps a snapshot of every successful read, or
// serves that snapshot alone when running offline.
type DoaService struct {
	remote    domain.DoaRepository
	snapshots domain.SnapshotStore
	offline   bool
	logger    *slog.Logger
}

// NewDoaService creates a new doa service. snapshots may be nil when the
// cache is disabled; offline then always fails with ErrNoSnapshot.
func NewDoaService(remote domain.DoaRepository, snapshots domain.SnapshotStore, offline bool, logger *slog.Logger) *DoaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DoaService{
		remote:    remote,
		snapshots: snapshots,
		offline:   offline,
		logger:    logger,
	}
}

// FetchAll performs exactly one remote read (no retry) unless offline
func (s *DoaService) FetchAll(ctx context.Context) ([]domain.Doa, error) {
	if s.offline {
		return s.fromSnapshot()
	}

	records, err := s.remote.FetchAll(ctx)
	if err != nil {
		s.logger.Error("failed to fetch doa", "error", err)
		return nil, err
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(records); err != nil {
			s.logger.Warn("failed to save snapshot", "error", err)
		}
	}
	s.logger.Info("fetched doa", "count", len(records))
	return records, nil
}

func (s *DoaService) fromSnapshot() ([]domain.Doa, error) {
	if s.snapshots == nil {
		return nil, domain.ErrNoSnapshot
	}
	snap, ok := s.snapshots.LoadSnapshot()
	if !ok {
		return nil, domain.ErrNoSnapshot
	}
	s.logger.Debug("serving snapshot", "count", len(snap.Records), "fetchedAt", snap.FetchedAt)
	return snap.Records, nil
}

// Offline reports whether the service reads only the snapshot
func (s *DoaService) Offline() bool {
	return s.offline
}

// SnapshotTime returns when the stored snapshot was taken
func (s *DoaService) SnapshotTime() (time.Time, bool) {
	if s.snapshots == nil {
		return time.Time{}, false
	}
	snap, ok := s.snapshots.LoadSnapshot()
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(snap.FetchedAt, 0), true
}

// ClearSnapshot drops the stored snapshot
func (s *DoaService) ClearSnapshot() error {
	if s.snapshots == nil {
		return nil
	}
	return s.snapshots.Clear()
}
