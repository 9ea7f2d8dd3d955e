package store

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// Postgres is a dictionary store backed by a single pgx connection.
// The game is single-threaded, so a pool would only add idle connections.
type Postgres struct {
	conn *pgx.Conn
}

// OpenPostgres connects to dsn and applies pending migrations.
// The caller is responsible for calling Close.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	var username, database string
	if err := conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("query connection info: %w", err)
	}
	log.Info().Str("database", database).Str("user", username).Msg("connected to postgres")

	p := &Postgres{conn: conn}
	if err := migrate(ctx, p); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	return p, nil
}

func (p *Postgres) ensureLedger(ctx context.Context) error {
	_, err := p.conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`)
	return err
}

func (p *Postgres) applied(ctx context.Context, name string) (bool, error) {
	var one int
	err := p.conn.QueryRow(ctx, `SELECT 1 FROM _migrations WHERE name=$1`, name).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (p *Postgres) apply(ctx context.Context, m migration) error {
	tx, err := p.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, m.sql); err != nil {
		return fmt.Errorf("apply %s: %w", m.name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO _migrations(name) VALUES ($1)`, m.name); err != nil {
		return fmt.Errorf("record %s: %w", m.name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", m.name, err)
	}
	return nil
}

func (p *Postgres) Lookup(ctx context.Context, length int) ([]string, error) {
	rows, err := p.conn.Query(ctx, `SELECT word FROM words WHERE length=$1 ORDER BY word`, length)
	if err != nil {
		return nil, fmt.Errorf("lookup length %d: %w", length, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("lookup length %d: %w", length, err)
	}
	return out, nil
}

func (p *Postgres) Import(ctx context.Context, words []string) (int, error) {
	tx, err := p.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	added := 0
	for _, w := range words {
		tag, err := tx.Exec(ctx,
			`INSERT INTO words(word, length) VALUES ($1, $2) ON CONFLICT (word) DO NOTHING`,
			w, utf8.RuneCountInString(w),
		)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		added += int(tag.RowsAffected())
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return added, nil
}

func (p *Postgres) Close() error {
	return p.conn.Close(context.Background())
}
