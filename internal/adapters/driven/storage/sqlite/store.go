package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/complete/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driven"
)

// Store is a SQLite-based ledger storage.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.complete/data/ledger.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".complete", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ledger.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// QuantityStore returns a QuantityStore interface backed by this store.
func (s *Store) QuantityStore() driven.QuantityStore {
	return &quantityStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_quantities.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// quantityStore implements driven.QuantityStore.
type quantityStore struct {
	store *Store
}

var _ driven.QuantityStore = (*quantityStore)(nil)

// Save stores or updates a quantity.
func (s *quantityStore) Save(ctx context.Context, q domain.Quantity) error {
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = now
	}

	re, im, ure, uim := q.Value.Parts()
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO quantities (id, name, re, im, u_re, u_im, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			re = excluded.re,
			im = excluded.im,
			u_re = excluded.u_re,
			u_im = excluded.u_im,
			updated_at = excluded.updated_at
	`, q.ID, q.Name, nullFloat(re), nullFloat(im), nullFloat(ure), nullFloat(uim),
		q.CreatedAt.UTC(), q.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving quantity: %w", err)
	}
	return nil
}

// Get retrieves a quantity by ID.
func (s *quantityStore) Get(ctx context.Context, id string) (*domain.Quantity, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, re, im, u_re, u_im, created_at, updated_at
		FROM quantities WHERE id = ?
	`, id)

	q, err := scanQuantity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return q, nil
}

// Delete removes a quantity.
func (s *quantityStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM quantities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting quantity: %w", err)
	}
	return nil
}

// List returns all quantities ordered by creation time, then name.
func (s *quantityStore) List(ctx context.Context) ([]domain.Quantity, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, re, im, u_re, u_im, created_at, updated_at
		FROM quantities
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying quantities: %w", err)
	}
	defer rows.Close()

	var quantities []domain.Quantity //nolint:prealloc // size unknown from query
	for rows.Next() {
		q, err := scanQuantity(rows)
		if err != nil {
			return nil, err
		}
		quantities = append(quantities, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quantities: %w", err)
	}
	return quantities, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanQuantity(row scanner) (*domain.Quantity, error) {
	var q domain.Quantity
	var re, im, ure, uim sql.NullFloat64
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&q.ID, &q.Name, &re, &im, &ure, &uim, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quantity: %w", err)
	}

	q.Value = domain.NewWithAbsorbed(floatOrNaN(re), floatOrNaN(im), floatOrNaN(ure), floatOrNaN(uim))
	if createdAt.Valid {
		q.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		q.UpdatedAt = updatedAt.Time
	}
	return &q, nil
}

// nullFloat maps NaN to NULL, which is what SQLite would store anyway.
func nullFloat(f float64) sql.NullFloat64 {
	if math.IsNaN(f) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func floatOrNaN(f sql.NullFloat64) float64 {
	if !f.Valid {
		return math.NaN()
	}
	return f.Float64
}
