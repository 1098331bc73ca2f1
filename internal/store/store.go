// Package store keeps contacts in an embedded SQLite database file.
package store

import (
	"context"
	"database/sql"
	"errors"
	"iter"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gitlab.com/dirk.krummacker/contactmgr/internal/model"
	_ "modernc.org/sqlite"
)

const (
	// DefaultPath is the database file used when no other path is configured.
	DefaultPath = "contactmgr.db"

	// DriverSQLite3 is the cgo driver from mattn/go-sqlite3.
	DriverSQLite3 = "sqlite3"

	// DriverModernc is the pure Go driver from modernc.org/sqlite.
	DriverModernc = "sqlite"
)

const (
	dropTable = `DROP TABLE IF EXISTS contacts`

	createTable = `CREATE TABLE contacts (id INTEGER PRIMARY KEY, firstname STRING, lastname STRING, email STRING, phone INT(10))`

	createTableIfMissing = `CREATE TABLE IF NOT EXISTS contacts (id INTEGER PRIMARY KEY, firstname STRING, lastname STRING, email STRING, phone INT(10))`

	insertContact = `
		INSERT INTO contacts (firstname, lastname, email, phone)
		VALUES (:firstname, :lastname, :email, :phone)
	`

	selectAll = `SELECT * FROM contacts ORDER BY id`

	selectWhereId = `SELECT * FROM contacts WHERE id = ?`

	deleteWhereId = `DELETE FROM contacts WHERE id = ?`
)

func init() {
	// sqlx only knows the bind type of the sqlite3 driver name.
	sqlx.BindDriver(DriverModernc, sqlx.QUESTION)
}

// Config selects the database file and the driver used to open it.
type Config struct {
	Path   string
	Driver string
}

// Store is a handle to the contacts database.
type Store struct {
	db *sqlx.DB
}

// Open acquires a connection to the database file named in the config. The connection is verified
// right away so that a missing directory, missing permissions or a corrupt file surface here as a
// ConnectionError. The caller must Close the returned store.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = DefaultPath
	}
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite3
	}

	sqlDB, err := sql.Open(driver, filepath.Clean(path))
	if err != nil {
		return nil, &DriverError{Driver: driver, Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, &ConnectionError{Path: path, Err: err}
	}
	return New(sqlDB, driver), nil
}

// New wraps an already opened database. The database argument can be a real database for
// production use or a mock database within unit tests.
func New(sqlDB *sql.DB, driver string) *Store {
	// A single connection serializes writers on the database file.
	sqlDB.SetMaxOpenConns(1)
	return &Store{db: sqlx.NewDb(sqlDB, driver)}
}

// Close releases the connection. It is safe to call on a nil store and more than once.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// InitSchema drops the contacts table if present and creates it empty.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dropTable); err != nil {
		return &WriteError{Op: "drop contacts table", Err: err}
	}
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return &WriteError{Op: "create contacts table", Err: err}
	}
	return nil
}

// EnsureSchema creates the contacts table unless it already exists. Existing rows are kept.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableIfMissing); err != nil {
		return &WriteError{Op: "create contacts table", Err: err}
	}
	return nil
}

// Save inserts the contact and returns the id the database assigned to it. The contact's own Id
// is ignored. Field values are bound as parameters, so quotes in them are stored as they are.
func (s *Store) Save(ctx context.Context, contact model.Contact) (int64, error) {
	result, err := s.db.NamedExecContext(ctx, insertContact, &contact)
	if err != nil {
		return 0, &WriteError{Op: "insert contact", Err: err}
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, &WriteError{Op: "read inserted id", Err: err}
	}
	return id, nil
}

// QueryAll returns the contacts in ascending id order. The sequence is lazy and single-pass: the
// query runs when iteration starts and its result set is closed when iteration ends, including
// when the loop body breaks early. A failure is yielded once as a ReadError and ends the sequence.
func (s *Store) QueryAll(ctx context.Context) iter.Seq2[model.Contact, error] {
	return func(yield func(model.Contact, error) bool) {
		rows, err := s.db.QueryxContext(ctx, selectAll)
		if err != nil {
			yield(model.Contact{}, &ReadError{Op: "query contacts", Err: err})
			return
		}
		defer rows.Close()

		for rows.Next() {
			var contact model.Contact
			if err := rows.StructScan(&contact); err != nil {
				yield(model.Contact{}, &ReadError{Op: "scan contact", Err: err})
				return
			}
			if !yield(contact, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Contact{}, &ReadError{Op: "iterate contacts", Err: err})
		}
	}
}

// All collects every contact into a slice.
func (s *Store) All(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	for contact, err := range s.QueryAll(ctx) {
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// FindByID returns the contact with the given id, or ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id int64) (model.Contact, error) {
	var contact model.Contact
	err := s.db.GetContext(ctx, &contact, selectWhereId, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Contact{}, ErrNotFound
	}
	if err != nil {
		return model.Contact{}, &ReadError{Op: "select contact", Err: err}
	}
	return contact, nil
}

// DeleteByID removes the contact with the given id. It reports whether a row was deleted.
func (s *Store) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, deleteWhereId, id)
	if err != nil {
		return false, &WriteError{Op: "delete contact", Err: err}
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, &WriteError{Op: "read deleted rows", Err: err}
	}
	return rowsAffected == 1, nil
}

// Exec runs a single statement that returns no rows. The migration tool feeds it one statement at
// a time.
func (s *Store) Exec(ctx context.Context, statement string) error {
	if _, err := s.db.ExecContext(ctx, statement); err != nil {
		return &WriteError{Op: "exec statement", Err: err}
	}
	return nil
}
