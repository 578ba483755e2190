package dictionary

import (
	"database/sql"
	"fmt"

	"github.com/funvibe/catena/internal/parser"
	_ "modernc.org/sqlite"
)

const createWordsTable = `
CREATE TABLE IF NOT EXISTS words (
	name      TEXT PRIMARY KEY,
	signature TEXT NOT NULL,
	body      TEXT NOT NULL
)`

// Store persists derived word definitions in a SQLite database, so a
// session's vocabulary survives restarts.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open word store: %w", err)
	}
	if _, err := db.Exec(createWordsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init word store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveWords writes every derived word in d to the store. Primitives ship
// with the prelude and are not persisted.
func (s *Store) SaveWords(d *Dictionary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save words: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO words (name, signature, body) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET signature = excluded.signature, body = excluded.body`)
	if err != nil {
		return fmt.Errorf("save words: %w", err)
	}
	defer stmt.Close()

	for _, name := range d.Words() {
		entry, _ := d.Lookup(name)
		if entry.Primitive {
			continue
		}
		if _, err := stmt.Exec(entry.Name, entry.Signature, bodySource(entry)); err != nil {
			return fmt.Errorf("save word %s: %w", entry.Name, err)
		}
	}
	return tx.Commit()
}

// LoadWords re-registers every stored word, re-parsing and re-checking
// each body against its declared signature. Returns the number loaded.
func (s *Store) LoadWords(d *Dictionary) (int, error) {
	rows, err := s.db.Query(`SELECT name, signature, body FROM words ORDER BY rowid`)
	if err != nil {
		return 0, fmt.Errorf("load words: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var name, signature, body string
		if err := rows.Scan(&name, &signature, &body); err != nil {
			return count, fmt.Errorf("load words: %w", err)
		}
		terms, err := parser.ParseTerms(body)
		if err != nil {
			return count, fmt.Errorf("load word %s: %w", name, err)
		}
		if err := d.DefineWord(name, signature, terms); err != nil {
			return count, err
		}
		count++
	}
	return count, rows.Err()
}

func bodySource(entry *Entry) string {
	src := ""
	for i, t := range entry.Body {
		if i > 0 {
			src += " "
		}
		src += t.String()
	}
	return src
}
