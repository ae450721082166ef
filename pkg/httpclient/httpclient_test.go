package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo(t *testing.T) {
	t.Run("sends basic auth and returns body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "dash", user)
			assert.Equal(t, "secret", pass)
			assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		client := New(Config{Timeout: time.Second})
		body, err := client.Get(context.Background(), srv.URL, &BasicAuth{Username: "dash", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, body)
	})

	t.Run("sends bearer token and custom headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			assert.Equal(t, "accessKey=a;secretKey=s", r.Header.Get("X-ApiKeys"))
		}))
		defer srv.Close()

		client := New(Config{Timeout: time.Second})
		_, err := client.Do(context.Background(), Request{
			URL:         srv.URL,
			BearerToken: "tok-123",
			Headers:     map[string]string{"X-ApiKeys": "accessKey=a;secretKey=s"},
		})

		require.NoError(t, err)
	})

	t.Run("posts json body with content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}))
		defer srv.Close()

		client := New(Config{Timeout: time.Second})
		_, err := client.PostJSON(context.Background(), srv.URL, nil, `{"query":"SELECT 1"}`)

		require.NoError(t, err)
	})

	t.Run("non-2xx is a status error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := New(Config{Timeout: time.Second})
		_, err := client.Get(context.Background(), srv.URL, nil)

		require.Error(t, err)
		assert.True(t, IsStatusError(err))
		assert.False(t, IsNetworkError(err))

		var httpErr *Error
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := New(Config{Timeout: time.Second})
		_, err := client.Get(context.Background(), srv.URL, nil)

		require.Error(t, err)
		assert.True(t, IsNetworkError(err))
	})

	t.Run("self-signed certificate accepted when verification disabled", func(t *testing.T) {
		srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		defer srv.Close()

		strict := New(Config{Timeout: time.Second})
		_, err := strict.Get(context.Background(), srv.URL, nil)
		assert.True(t, IsNetworkError(err))

		relaxed := New(Config{Timeout: time.Second, InsecureSkipVerify: true})
		body, err := relaxed.Get(context.Background(), srv.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", body)
	})
}
