package propertyinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestIsSelfServeAllowed_Allowed(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/homes/prop-1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"listingInfo":{"isSelfServeVisitsAllowed":true}}`))
	})
	client := NewClient(srv.URL, time.Second, nopLogger{})

	allowed, err := client.IsSelfServeAllowed(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestIsSelfServeAllowed_Disallowed(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"listingInfo":{"isSelfServeVisitsAllowed":false}}`))
	})
	client := NewClient(srv.URL, time.Second, nopLogger{})

	allowed, err := client.IsSelfServeAllowed(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestIsSelfServeAllowed_MissingFlag(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no listing info", `{}`},
		{"null flag", `{"listingInfo":{"isSelfServeVisitsAllowed":null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})
			client := NewClient(srv.URL, time.Second, nopLogger{})

			allowed, err := client.IsSelfServeAllowed(context.Background(), "prop-1")

			assert.ErrorIs(t, err, ErrUnavailable)
			assert.False(t, allowed)
		})
	}
}

func TestIsSelfServeAllowed_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})
	client := NewClient(srv.URL, time.Second, nopLogger{})

	allowed, err := client.IsSelfServeAllowed(context.Background(), "prop-1")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, allowed)
}

func TestIsSelfServeAllowed_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, time.Second, nopLogger{})

	allowed, err := client.IsSelfServeAllowed(context.Background(), "prop-1")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, allowed)
}

func TestGetProperty_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetProperty(context.Background(), "prop-1")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
