// ABOUTME: Process-wide database handle, opened lazily on first use.
// ABOUTME: Thread-safe; a failed open is not cached so the next call retries.
package storage

import "sync"

// Provider hands out one shared *DB for the whole process.
type Provider struct {
	path string
	opts []Option

	mu sync.Mutex
	db *DB
}

// NewProvider returns a Provider for the database at path. An empty path
// means the default per-user location.
func NewProvider(path string, opts ...Option) *Provider {
	return &Provider{path: path, opts: opts}
}

// Get returns the shared handle, opening and migrating it on first use.
func (p *Provider) Get() (*DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	var (
		db  *DB
		err error
	)
	if p.path == "" {
		db, err = OpenDefault(p.opts...)
	} else {
		db, err = Open(p.path, p.opts...)
	}
	if err != nil {
		return nil, err
	}

	p.db = db
	return db, nil
}

// Close releases the shared handle. A later Get opens a fresh one.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
