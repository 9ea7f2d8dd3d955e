// internal/store/store.go
//
// Dictionary stores for automatic pool building.
// A store holds the same one-word-per-row dictionary a words file would, so
// several machines can share one curated list.
//
// Backends:
//   - SQLite (default): DSN is a file path, e.g. ./data/words.db.
//   - Postgres: DSN starts with postgres:// or postgresql://.
//
// Both apply the embedded sql/*.sql migrations, recorded in _migrations.

package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Store defines a dictionary backend.
type Store interface {
	// Lookup returns every word of the given length, in word order.
	Lookup(ctx context.Context, length int) ([]string, error)

	// Import inserts words that are not yet present and reports how many
	// were added. Words are expected to be normalised already.
	Import(ctx context.Context, words []string) (int, error)

	// Close releases the underlying connection.
	Close() error
}

//go:embed sql/*.sql
var migrationFS embed.FS

// Open picks a backend from the DSN and applies migrations.
func Open(ctx context.Context, dsn string) (Store, error) {
	if isPostgres(dsn) {
		return OpenPostgres(ctx, dsn)
	}
	return OpenSQLite(ctx, dsn)
}

func isPostgres(dsn string) bool {
	d := strings.ToLower(dsn)
	return strings.HasPrefix(d, "postgres://") || strings.HasPrefix(d, "postgresql://")
}

type migration struct {
	name string
	sql  string
}

// migrations returns the embedded migration scripts in lexical order.
func migrations() ([]migration, error) {
	names, err := fs.Glob(migrationFS, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]migration, 0, len(names))
	for _, name := range names {
		b, err := migrationFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, migration{name: name, sql: string(b)})
	}
	return out, nil
}

// migrator is what a backend provides so migrate can run the embedded
// scripts against it.
type migrator interface {
	// ensureLedger creates the _migrations table if missing.
	ensureLedger(ctx context.Context) error
	// applied reports whether the named script is recorded in _migrations.
	applied(ctx context.Context, name string) (bool, error)
	// apply runs the script and records it, in one transaction.
	apply(ctx context.Context, m migration) error
}

// migrate applies each embedded script once, in lexical order.
func migrate(ctx context.Context, db migrator) error {
	if err := db.ensureLedger(ctx); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	ms, err := migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	for _, m := range ms {
		done, err := db.applied(ctx, m.name)
		if err != nil {
			return fmt.Errorf("query _migrations: %w", err)
		}
		if done {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		if err := db.apply(ctx, m); err != nil {
			return err
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}
