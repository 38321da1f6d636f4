package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v71/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubDirectory(t *testing.T, handler http.Handler) *Directory {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return NewDirectoryWithClient(client)
}

func TestUsernames(t *testing.T) {
	dir := stubDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user/1":
			_, _ = w.Write([]byte(`{"id":1,"login":"alice"}`))
		case "/user/2":
			_, _ = w.Write([]byte(`{"id":2,"login":"bobby"}`))
		default:
			t.Errorf("unexpected request: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))

	usernames, err := dir.Usernames(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "alice", 2: "bobby"}, usernames)
}

func TestUsernamesSkipsDeletedAccounts(t *testing.T) {
	dir := stubDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/404" {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"login":"alice"}`))
	}))

	usernames, err := dir.Usernames(context.Background(), []int64{1, 404})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "alice"}, usernames)
}

func TestUsernamesServerError(t *testing.T) {
	dir := stubDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))

	_, err := dir.Usernames(context.Background(), []int64{1})
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, NewDirectory("").RequireAuth(ctx))
	assert.NoError(t, NewDirectory("token").RequireAuth(ctx))
}
