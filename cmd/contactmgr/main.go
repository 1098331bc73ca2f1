package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"gitlab.com/dirk.krummacker/contactmgr/internal/demo"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

// args are the optional command line flags. Without any of them the program uses contactmgr.db in
// the working directory.
type args struct {
	DB     string `arg:"--db,env:CONTACTMGR_DB" default:"contactmgr.db" help:"path of the SQLite database file"`
	Driver string `arg:"--driver,env:CONTACTMGR_DRIVER" default:"sqlite3" help:"database driver: sqlite3 (cgo) or sqlite (pure Go)"`
	Format string `arg:"--format" default:"lines" help:"output format: lines or table"`
}

func (args) Description() string {
	return "Recreates the contacts table, saves three contacts and prints them."
}

// Usage example on the command line:
// > go run main.go
// > go run main.go --db=/tmp/contacts.db --format=table
func main() {
	var a args
	arg.MustParse(&a)
	os.Exit(run(a, os.Stdout, os.Stderr))
}

// run executes the walkthrough and returns the process exit status. A missing driver is fatal.
func run(a args, stdout io.Writer, stderr io.Writer) int {
	err := demo.Run(context.Background(), demo.Config{
		Store:  store.Config{Path: a.DB, Driver: a.Driver},
		Format: a.Format,
	}, stdout)
	if err == nil {
		return 0
	}

	var driverErr *store.DriverError
	if errors.As(err, &driverErr) {
		log.Fatal(err)
	}
	color.New(color.FgRed).Fprintf(stderr, "There was a problem connecting to the DB: %s\n", err)
	return 1
}
