package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/goresan/goresan/internal/domain"
)

var bucketSnapshots = []byte("snapshots")

const keyLatest = "latest"

// SnapshotStore keeps the last successfully fetched collection on disk so
// the CLI and TUI can run offline. It implements domain.SnapshotStore.
type SnapshotStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte

	now func() time.Time
}

// NewSnapshotStore opens the snapshot database under baseCacheDir, in a
// directory derived from sourceKey (base URL and table id) so switching
// tables never mixes snapshots. An empty baseCacheDir keeps everything in
// memory.
func NewSnapshotStore(baseCacheDir, sourceKey string) (*SnapshotStore, error) {
	if baseCacheDir == "" {
		return &SnapshotStore{cache: make(map[string][]byte), now: time.Now}, nil
	}

	dir := baseCacheDir
	if sourceKey != "" {
		dir = filepath.Join(baseCacheDir, hashSourceKey(sourceKey))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "goresan.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SnapshotStore{db: db, cache: make(map[string][]byte), now: time.Now}, nil
}

// SourceKey identifies one Baserow table for cache partitioning
func SourceKey(baseURL, tableID string) string {
	return strings.TrimRight(strings.ToLower(baseURL), "/") + "|" + tableID
}

func hashSourceKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:6])
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *SnapshotStore) get(key string, dest any) bool {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return false
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *SnapshotStore) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), data)
	})
}

// === Snapshots ===

// SaveSnapshot replaces the stored collection with records
func (s *SnapshotStore) SaveSnapshot(records []domain.Doa) error {
	snap := domain.Snapshot{Records: records, FetchedAt: s.now().Unix()}
	if err := s.set(keyLatest, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored collection, if any
func (s *SnapshotStore) LoadSnapshot() (*domain.Snapshot, bool) {
	var snap domain.Snapshot
	if !s.get(keyLatest, &snap) {
		return nil, false
	}
	return &snap, true
}

// Clear removes the stored collection
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	delete(s.cache, keyLatest)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Delete([]byte(keyLatest))
	})
}
