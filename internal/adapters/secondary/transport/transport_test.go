package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concordlib/concord/internal/core/domain"
)

// newTestClient points a client at the given handler with retries disabled,
// so each Get maps to exactly one upstream request.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL:  server.URL,
		Token:    "test-token",
		RetryMax: -1,
	})
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","username":"jorts"}`))
	})

	var payload domain.UserPayload
	err := client.Get(context.Background(), "/users/1", &payload)

	require.NoError(t, err)
	assert.Equal(t, domain.Snowflake(1), payload.ID)
	assert.Equal(t, "jorts", payload.Username)
}

func TestClient_Get_SendsHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bot test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Contains(t, r.Header.Get("User-Agent"), "concordlib")
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Get(context.Background(), "/users/1", nil)

	require.NoError(t, err)
}

func TestClient_Get_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":10013,"message":"Unknown User"}`))
	})

	err := client.Get(context.Background(), "/users/404", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, domain.IsMiss(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, 10013, apiErr.Code)
	assert.Equal(t, "Unknown User", apiErr.Message)
}

func TestClient_Get_Forbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":50001,"message":"Missing Access"}`))
	})

	err := client.Get(context.Background(), "/guilds/900/members/1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.True(t, domain.IsMiss(err))
}

func TestClient_Get_ServerErrorIsNotAMiss(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Get(context.Background(), "/users/1", nil)

	require.Error(t, err)
	assert.False(t, domain.IsMiss(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestClient_Get_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "/users/1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIError_Error(t *testing.T) {
	withMessage := &APIError{Status: 404, Code: 10013, Message: "Unknown User"}
	assert.Equal(t, "api error: status 404, code 10013: Unknown User", withMessage.Error())

	bare := &APIError{Status: 500}
	assert.Equal(t, "api error: status 500", bare.Error())
}
