package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunDefault expects the connection line followed by the three contacts.
func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run(args{
		DB:     filepath.Join(t.TempDir(), "contactmgr.db"),
		Driver: "sqlite3",
		Format: "lines",
	}, &stdout, &stderr)

	assert.Equal(t, 0, status)
	assert.Empty(t, stderr.String())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, []string{
		"Connection to SQLite has been established.",
		"Jackie Samyn 1",
		"Joe Samyn 2",
		"Jimmy Samyn 3",
	}, lines)
}

// TestRunUnwritable expects a single error line and nothing on stdout.
func TestRunUnwritable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run(args{
		DB:     filepath.Join(t.TempDir(), "missing", "contactmgr.db"),
		Driver: "sqlite3",
	}, &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "There was a problem connecting to the DB")
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}
