package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payment_intents", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"client_secret": "pi_abc_secret_xyz"}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test_123").SetBaseURL(srv.URL)

	secret, err := client.CreateIntent(context.Background(), 1999, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_abc_secret_xyz", secret)
}

func TestClientCreateIntentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Amount must be at least 50 cents"}}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test_123").SetBaseURL(srv.URL)

	_, err := client.CreateIntent(context.Background(), 1, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Amount must be at least 50 cents")
}

func TestClientCreateIntentMissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test_123").SetBaseURL(srv.URL)

	_, err := client.CreateIntent(context.Background(), 1999, "usd")
	require.Error(t, err)
}
