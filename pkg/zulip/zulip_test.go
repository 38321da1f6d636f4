package zulip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "bot@example.com", user)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","members":[
			{"user_id":100,"full_name":"Alice Doe","delivery_email":"alice@example.com"},
			{"user_id":200,"full_name":"Bob Roe","delivery_email":"bob@example.com"}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bot@example.com", "key")
	users, err := client.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []User{
		{UserID: 100, FullName: "Alice Doe", Email: "alice@example.com"},
		{UserID: 200, FullName: "Bob Roe", Email: "bob@example.com"},
	}, users)
}

func TestGetUsersErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"result":"error","msg":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "bot@example.com", "bad-key")
	_, err := client.GetUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, NewClient("", "", "").RequireAuth(ctx))
	assert.Error(t, NewClient("", "bot@example.com", "").RequireAuth(ctx))
	assert.NoError(t, NewClient("", "bot@example.com", "key").RequireAuth(ctx))
}
