// Package demo runs the contact manager walkthrough: it connects to the database, recreates the
// contacts table, saves a few contacts and prints every row.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gitlab.com/dirk.krummacker/contactmgr/internal/model"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

const (
	// FormatLines prints one "firstname lastname id" line per contact.
	FormatLines = "lines"

	// FormatTable prints the contacts as a table.
	FormatTable = "table"
)

// Connected is printed once the database connection has been established.
const Connected = "Connection to SQLite has been established."

// Seed holds the contacts saved on every run, in insertion order.
var Seed = []model.Contact{
	{FirstName: "Jackie", LastName: "Samyn", Email: "jackie@gmail.com", Phone: 2197767123},
	{FirstName: "Joe", LastName: "Samyn", Email: "js@gmail.com", Phone: 2197767123},
	{FirstName: "Jimmy", LastName: "Samyn", Email: "jimmyS@gmail.com", Phone: 2197757055},
}

// Config controls a single run.
type Config struct {
	Store  store.Config
	Format string
}

// Run executes the walkthrough and writes its output to out. The connection is closed before Run
// returns, whether or not a step failed. The returned error is one of the store's typed errors.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Fprintln(out, Connected)

	if err := s.InitSchema(ctx); err != nil {
		return err
	}
	for _, contact := range Seed {
		if _, err := s.Save(ctx, contact); err != nil {
			return err
		}
	}

	if cfg.Format == FormatTable {
		return printTable(ctx, s, out)
	}
	return printLines(ctx, s, out)
}

// printLines prints each contact as "firstname lastname id".
func printLines(ctx context.Context, s *store.Store, out io.Writer) error {
	for contact, err := range s.QueryAll(ctx) {
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s %d\n", contact.FirstName, contact.LastName, contact.Id)
	}
	return nil
}

// printTable renders all contacts with go-pretty.
func printTable(ctx context.Context, s *store.Store, out io.Writer) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"id", "firstname", "lastname", "email", "phone"})
	for contact, err := range s.QueryAll(ctx) {
		if err != nil {
			return err
		}
		tw.AppendRow(table.Row{contact.Id, contact.FirstName, contact.LastName, contact.Email, contact.Phone})
	}
	tw.Render()
	return nil
}
