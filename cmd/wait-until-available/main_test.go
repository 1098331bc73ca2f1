package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWaitUntilAvailableNotFound expects an empty contacts list to count as available.
func TestWaitUntilAvailableNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.True(t, waitUntilAvailable(server.URL, time.Second, 10*time.Millisecond))
}

// TestWaitUntilAvailableTimeout expects to give up when the service keeps failing.
func TestWaitUntilAvailableTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	assert.False(t, waitUntilAvailable(server.URL, 50*time.Millisecond, 10*time.Millisecond))
}
