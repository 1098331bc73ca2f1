package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigDefaults expects the defaults when no variables are set.
func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DBPATH", "DBDRIVER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "contactmgr.db", cfg.StoreConfig().Path)
	assert.Equal(t, "sqlite3", cfg.StoreConfig().Driver)
}

// TestLoadConfigInvalidPort expects non-numeric and out of range ports to be rejected.
func TestLoadConfigInvalidPort(t *testing.T) {
	for _, port := range []string{"eighty", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		assert.Error(t, err, "PORT="+port)
	}
}
