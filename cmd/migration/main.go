package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gitlab.com/dirk.krummacker/contactmgr/internal/migration"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

// Usage example on the command line:
// > go run main.go -db=contactmgr.db -file=../../scripts/database.sql
func main() {
	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	dbPtr := flag.String("db", store.DefaultPath, "the SQLite database file")
	driverPtr := flag.String("driver", store.DriverSQLite3, "the database driver, sqlite3 or sqlite")
	flag.Parse()

	count, err := run(*filePtr, store.Config{Path: *dbPtr, Driver: *driverPtr})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("executed %d statements from %s", count, *filePtr)
}

// run executes every statement of the script file, stopping at the first failure.
func run(file string, cfg store.Config) (int, error) {
	readFile, err := os.Open(file) // nosemgrep
	if err != nil {
		return 0, err
	}
	defer readFile.Close()

	statements, err := migration.Statements(readFile)
	if err != nil {
		return 0, err
	}

	ctx := context.Background()
	s, err := store.Open(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	for i, statement := range statements {
		if err := s.Exec(ctx, statement); err != nil {
			return i, err
		}
	}
	return len(statements), nil
}
