package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

// TestRunScript executes the bundled script and expects the three demo contacts in the database.
func TestRunScript(t *testing.T) {
	cfg := store.Config{Path: filepath.Join(t.TempDir(), store.DefaultPath)}
	count, err := run(filepath.Join("..", "..", "scripts", "database.sql"), cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	s, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()
	contacts, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Jimmy", contacts[2].FirstName)
	assert.Equal(t, int64(3), contacts[2].Id)
}

// TestRunMissingFile expects an error when the script does not exist.
func TestRunMissingFile(t *testing.T) {
	_, err := run(filepath.Join(t.TempDir(), "missing.sql"), store.Config{})
	assert.Error(t, err)
}
