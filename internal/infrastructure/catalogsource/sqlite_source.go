package catalogsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
	"github.com/alexisbeaulieu97/bookshelf/internal/ports"
	bookshelferrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

const publishedLayout = time.RFC3339Nano

// schema holds the catalog tables. Book and genre order is kept in explicit
// position columns so a round trip preserves catalog order.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS authors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS genres (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL UNIQUE,
    title TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    published TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS book_genres (
    book_id TEXT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
    genre_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (book_id, position)
);
`

// SQLiteSource reads a catalog previously written by Save.
type SQLiteSource struct {
	path   string
	logger *logger.Logger
}

// NewSQLiteSource returns a source backed by the database at path.
func NewSQLiteSource(path string, log *logger.Logger) *SQLiteSource {
	return &SQLiteSource{path: path, logger: log}
}

// Name implements ports.CatalogSource.
func (s *SQLiteSource) Name() string {
	return s.path
}

// Load implements ports.CatalogSource.
func (s *SQLiteSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); err != nil {
		return nil, bookshelferrors.NewParseError(s.path, 0, err)
	}

	log := s.logger.WithFields(map[string]any{"source": s.path})
	log.Debug("opening catalog database")

	db, err := openDB(s.path)
	if err != nil {
		return nil, bookshelferrors.NewSourceError(s.path, err)
	}
	defer db.Close()

	cat, err := readCatalog(ctx, db)
	if err != nil {
		log.Error(err, "reading catalog database failed")
		return nil, bookshelferrors.NewSourceError(s.path, err)
	}

	log.WithFields(map[string]any{
		"books":   len(cat.Books),
		"authors": len(cat.Authors),
		"genres":  len(cat.Genres),
	}).Info("catalog loaded")
	return cat, nil
}

// Save replaces the contents of the database at path with cat, creating the
// file and its parent directory when needed.
func Save(ctx context.Context, path string, cat *catalog.Catalog) error {
	if cat == nil || cat.Books == nil {
		return catalog.ErrSourceRequired
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return bookshelferrors.NewSourceError(path, err)
	}
	defer db.Close()

	if err := writeCatalog(ctx, db, cat); err != nil {
		return bookshelferrors.NewSourceError(path, err)
	}
	return nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func writeCatalog(ctx context.Context, db *sql.DB, cat *catalog.Catalog) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"book_genres", "books", "genres", "authors", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if cat.PageSize > 0 {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('page_size', ?)`, strconv.Itoa(cat.PageSize)); err != nil {
			return fmt.Errorf("inserting page size: %w", err)
		}
	}

	for id, name := range cat.Authors {
		if _, err := tx.ExecContext(ctx, `INSERT INTO authors (id, name) VALUES (?, ?)`, id, name); err != nil {
			return fmt.Errorf("inserting author %s: %w", id, err)
		}
	}
	for id, name := range cat.Genres {
		if _, err := tx.ExecContext(ctx, `INSERT INTO genres (id, name) VALUES (?, ?)`, id, name); err != nil {
			return fmt.Errorf("inserting genre %s: %w", id, err)
		}
	}

	for pos, b := range cat.Books {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO books (id, position, title, author, image, description, published) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.ID, pos, b.Title, b.Author, b.Image, b.Description, b.Published.Format(publishedLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting book %s: %w", b.ID, err)
		}
		for gpos, g := range b.Genres {
			if _, err := tx.ExecContext(ctx, `INSERT INTO book_genres (book_id, genre_id, position) VALUES (?, ?, ?)`, b.ID, g, gpos); err != nil {
				return fmt.Errorf("tagging book %s with %s: %w", b.ID, g, err)
			}
		}
	}

	return tx.Commit()
}

func readCatalog(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{Books: []catalog.Book{}}

	var pageSize string
	err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'page_size'`).Scan(&pageSize)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("reading page size: %w", err)
	default:
		if cat.PageSize, err = strconv.Atoi(pageSize); err != nil {
			return nil, fmt.Errorf("invalid page size %q: %w", pageSize, err)
		}
	}

	if cat.Authors, err = readLookup(ctx, db, "authors"); err != nil {
		return nil, err
	}
	if cat.Genres, err = readLookup(ctx, db, "genres"); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, title, author, image, description, published FROM books ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var (
			b         catalog.Book
			published string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Image, &b.Description, &published); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		if b.Published, err = time.Parse(publishedLayout, published); err != nil {
			return nil, fmt.Errorf("book %s: %w", b.ID, err)
		}
		index[b.ID] = len(cat.Books)
		cat.Books = append(cat.Books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	genreRows, err := db.QueryContext(ctx, `SELECT book_id, genre_id FROM book_genres ORDER BY book_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying book genres: %w", err)
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var bookID, genreID string
		if err := genreRows.Scan(&bookID, &genreID); err != nil {
			return nil, fmt.Errorf("scanning book genre: %w", err)
		}
		if i, ok := index[bookID]; ok {
			cat.Books[i].Genres = append(cat.Books[i].Genres, genreID)
		}
	}
	return cat, genreRows.Err()
}

func readLookup(ctx context.Context, db *sql.DB, table string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT id, name FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		out[id] = name
	}
	return out, rows.Err()
}

var _ ports.CatalogSource = (*SQLiteSource)(nil)
