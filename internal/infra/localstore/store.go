// Package localstore persists job postings on the device itself: one bbolt
// bucket, one well-known key, one JSON-serialized array of records. It mirrors
// the remote store's contract so the two are interchangeable behind the
// backend selector.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/pkg/clock"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketName = []byte("jobtrack")
	jobsKey    = []byte("jobs")
	probeKey   = []byte("__storage_probe__")
)

type Store struct {
	db     *bolt.DB
	clock  clock.Clock
	logger *slog.Logger
}

func New(db *bolt.DB, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{db: db, clock: clk, logger: logger}
}

// Open opens (or creates) the bbolt file and ensures the bucket exists.
func Open(path string, clk clock.Clock, logger *slog.Logger) (*Store, func(), error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, berr := tx.CreateBucketIfNotExists(bucketName)
		return berr
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if cerr := db.Close(); cerr != nil {
			logger.Warn("failed to close local store", "error", cerr.Error())
		}
	}
	return New(db, clk, logger), cleanup, nil
}

// Save assigns a fresh identifier and timestamps, appends the record, and
// persists the whole collection. A failed write does not fail the call; the
// caller is expected to check IsAvailable when it cares about durability.
func (s *Store) Save(_ context.Context, draft job.Draft) (*job.Posting, error) {
	record := job.NewPosting(draft, s.clock.Now())

	records := s.readAll()
	records = append(records, record)
	if err := s.writeAll(records); err != nil {
		s.logger.Warn("local store write failed, record not persisted", "error", err.Error())
	}
	return &record, nil
}

// Get returns the matching record or nil; "not found" is never an error.
func (s *Store) Get(_ context.Context, id string) (*job.Posting, error) {
	for _, r := range s.readAll() {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

// GetAll returns every record, newest first by creation time.
func (s *Store) GetAll(_ context.Context) ([]job.Posting, error) {
	records := s.readAll()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Update merges the patch into the stored record. Identifier and creation
// time survive regardless of what the patch carries. Returns nil when the id
// is unknown.
func (s *Store) Update(_ context.Context, id string, patch job.Patch) (*job.Posting, error) {
	records := s.readAll()
	for i, r := range records {
		if r.ID != id {
			continue
		}
		merged := job.Apply(r, patch, s.clock.Now())
		records[i] = merged
		if err := s.writeAll(records); err != nil {
			s.logger.Warn("local store write failed, update not persisted", "error", err.Error())
		}
		return &merged, nil
	}
	return nil, nil
}

// Delete removes the record if present and reports whether anything changed.
func (s *Store) Delete(_ context.Context, id string) (bool, error) {
	records := s.readAll()
	kept := records[:0]
	removed := false
	for _, r := range records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	if err := s.writeAll(kept); err != nil {
		s.logger.Warn("local store write failed, delete not persisted", "error", err.Error())
	}
	return true, nil
}

// IsAvailable probes the store with a trivial write/delete cycle. Any failure
// reads as unavailable.
func (s *Store) IsAvailable(_ context.Context) bool {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if err := b.Put(probeKey, []byte("probe")); err != nil {
			return err
		}
		return b.Delete(probeKey)
	})
	return err == nil
}

// Records is the raw accessor used by the migration routine: the stored
// collection in insertion order, with no sorting applied.
func (s *Store) Records() []job.Posting {
	return s.readAll()
}

// Reset drops the entire stored blob. Best effort; the error is reported but
// local data is never otherwise destroyed by this store.
func (s *Store) Reset() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete(jobsKey)
	})
}

// readAll treats a missing or unparseable blob as an empty collection rather
// than propagating a parse error.
func (s *Store) readAll() []job.Posting {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(jobsKey); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil || len(raw) == 0 {
		return []job.Posting{}
	}

	var records []job.Posting
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("local store blob is corrupted, treating as empty", "error", err.Error())
		return []job.Posting{}
	}
	return records
}

func (s *Store) writeAll(records []job.Posting) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(jobsKey, raw)
	})
}
