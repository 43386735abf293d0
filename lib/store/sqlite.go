package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"go-wiktionary-wsd/lib/dataset"

	_ "github.com/mattn/go-sqlite3"
)

const listDelimiter = "#"

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS senses
     (
         id INTEGER PRIMARY KEY,
         sense_id TEXT UNIQUE,
         word TEXT,
         pos TEXT,
         gloss TEXT,
         tags TEXT,
         depth INTEGER,
         synonyms TEXT
     )`,
	`CREATE INDEX IF NOT EXISTS senses_word_idx ON senses (word, pos)`,
	`CREATE TABLE IF NOT EXISTS examples
     (
         id INTEGER PRIMARY KEY,
         text TEXT,
         sense_id TEXT
     )`,
	`CREATE TABLE IF NOT EXISTS quotations
     (
         id INTEGER PRIMARY KEY,
         text TEXT,
         sense_id TEXT,
         attribution TEXT
     )`,
	`CREATE INDEX IF NOT EXISTS examples_sense_idx ON examples (sense_id)`,
	`CREATE INDEX IF NOT EXISTS quotations_sense_idx ON quotations (sense_id)`,
}

// SQLiteStore writes a dataset into a single sqlite database file.
type SQLiteStore struct {
	dbh *sql.DB
}

var _ Sink = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the database at path. purge removes an existing
// file first.
func OpenSQLite(path string, purge bool) (*SQLiteStore, error) {
	if purge {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	Logger.Info("Opening database %s\n", path)
	dbh, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc&_mutex=full&_busy_timeout=500", path))
	if err != nil {
		return nil, err
	}
	dbh.SetMaxOpenConns(1)

	for _, stmt := range sqliteSchema {
		if _, err := dbh.Exec(stmt); err != nil {
			dbh.Close()
			return nil, err
		}
	}

	return &SQLiteStore{dbh: dbh}, nil
}

// Store inserts every record of d in one transaction.
func (s *SQLiteStore) Store(ctx context.Context, d dataset.Dataset) error {
	tx, err := s.dbh.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	count := 0

	Logger.Debug("sqlite> Preparing insert queries...\n")
	senseSth, err := tx.PrepareContext(ctx, `INSERT INTO senses (sense_id, word, pos, gloss, tags, depth, synonyms)
                                          VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer senseSth.Close()

	for _, sense := range d.Senses {
		_, err := senseSth.ExecContext(ctx,
			sense.SenseID, sense.Word, string(sense.POS), sense.Gloss,
			joinEscaped(sense.Tags), sense.Depth, joinEscaped(sense.Synonyms),
		)
		if err != nil {
			return fmt.Errorf("sense %s: %w", sense.SenseID, err)
		}
		count++
	}

	exampleSth, err := tx.PrepareContext(ctx, `INSERT INTO examples (text, sense_id) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer exampleSth.Close()

	for _, e := range d.Examples {
		if _, err := exampleSth.ExecContext(ctx, e.Text, e.SenseID); err != nil {
			return err
		}
		count++
	}

	quotationSth, err := tx.PrepareContext(ctx, `INSERT INTO quotations (text, sense_id, attribution) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer quotationSth.Close()

	for _, q := range d.Quotations {
		if _, err := quotationSth.ExecContext(ctx, q.Text, q.SenseID, q.Attribution); err != nil {
			return err
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	Logger.Info("sqlite> Inserted %d records\n", count)
	return nil
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.dbh.Close()
}

// joinEscaped joins list with '#', escaping any '#' inside an item.
func joinEscaped(list []string) string {
	b := strings.Builder{}
	for i := range list {
		b.WriteString(strings.ReplaceAll(list[i], listDelimiter, `\`+listDelimiter))
		if i != len(list)-1 {
			b.WriteString(listDelimiter)
		}
	}
	return b.String()
}
