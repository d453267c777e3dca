// Package badger persists serialized synchronizer state in BadgerDB. Each
// state is snappy-compressed and written under its own key in a single
// transaction.
package badger

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/golang/snappy"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("state not found")

const keyPrefix = "state/"

// Options configures Open.
type Options struct {
	// Path is the data directory. It is ignored when InMemory is set.
	Path       string
	InMemory   bool
	SyncWrites bool
}

type Store struct {
	db      *badgerdb.DB
	metrics Metrics
	logger  *zap.Logger
}

func Open(opts Options, metrics Metrics, logger *zap.Logger) (*Store, error) {
	logger = logger.Named("state_store")

	dbOpts := badgerdb.DefaultOptions(opts.Path)
	if opts.InMemory {
		dbOpts = badgerdb.DefaultOptions("").WithInMemory(true)
	}
	dbOpts = dbOpts.
		WithSyncWrites(opts.SyncWrites).
		WithLogger(badgerLogger{logger.Sugar()})

	db, err := badgerdb.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	return &Store{db: db, metrics: metrics, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Persist saves src under name, replacing any previous state.
func (s *Store) Persist(name string, src Saver) (err error) {
	started := time.Now()
	defer func() {
		s.observe("persist", err, started)
	}()

	var raw bytes.Buffer
	if err := src.Save(&raw); err != nil {
		return fmt.Errorf("serialize %s: %w", name, err)
	}
	value := snappy.Encode(nil, raw.Bytes())

	if err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(stateKey(name), value)
	}); err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	s.logger.Debug("state persisted",
		zap.String("name", name),
		zap.Int("raw_bytes", raw.Len()),
		zap.Int("stored_bytes", len(value)),
	)
	return nil
}

// Restore loads the state saved under name into dst. It returns ErrNotFound
// if nothing was persisted under name.
func (s *Store) Restore(name string, dst Loader) (err error) {
	started := time.Now()
	defer func() {
		s.observe("restore", err, started)
	}()

	var value []byte
	err = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(stateKey(name))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return fmt.Errorf("restore %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}

	raw, err := snappy.Decode(nil, value)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", name, err)
	}
	if err := dst.Load(bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

// Delete removes the state saved under name. Deleting a missing state is not an error.
func (s *Store) Delete(name string) (err error) {
	started := time.Now()
	defer func() {
		s.observe("delete", err, started)
	}()

	if err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(stateKey(name))
	}); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// Names lists every persisted state in key order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return names, nil
}

func (s *Store) observe(operation string, err error, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(operation, err, started)
}

func stateKey(name string) []byte {
	return []byte(keyPrefix + name)
}

// badgerLogger routes badger's own logging through zap.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
