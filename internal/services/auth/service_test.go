package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
)

// memCreds is an in-memory CredentialStore for tests.
type memCreds struct {
	token string
}

func (m *memCreds) Token() string              { return m.token }
func (m *memCreds) SetToken(token string) error { m.token = token; return nil }
func (m *memCreds) ClearToken() error           { m.token = ""; return nil }

func TestLoginStoresToken(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/login", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-xyz","token_type":"bearer"}`))
	}))
	defer srv.Close()

	creds := &memCreds{}
	svc := NewService(zenapi.NewClient(srv.URL, creds), creds, common.NewSilentLogger())

	require.NoError(t, svc.Login(context.Background(), "sam@example.com", "hunter2"))
	assert.Equal(t, "tok-xyz", creds.Token())
	assert.Equal(t, "sam@example.com", body["email"])
	assert.Equal(t, "hunter2", body["password"])
}

func TestLoginRejectsMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer srv.Close()

	creds := &memCreds{}
	svc := NewService(zenapi.NewClient(srv.URL, creds), creds, common.NewSilentLogger())

	require.Error(t, svc.Login(context.Background(), "sam@example.com", "pw"))
	assert.Empty(t, creds.Token())
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect email or password"}`))
	}))
	defer srv.Close()

	creds := &memCreds{}
	svc := NewService(zenapi.NewClient(srv.URL, creds), creds, common.NewSilentLogger())

	err := svc.Login(context.Background(), "sam@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())
}

func TestDemoLoginAndLogout(t *testing.T) {
	creds := &memCreds{}
	svc := NewService(nil, creds, common.NewSilentLogger())

	require.NoError(t, svc.DemoLogin())
	assert.NotEmpty(t, creds.Token())

	require.NoError(t, svc.Logout())
	assert.Empty(t, creds.Token())
}

func TestCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":5,"username":"sam","email":"sam@example.com","profile_pic":null}`))
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok-abc"}
	svc := NewService(zenapi.NewClient(srv.URL, creds), creds, common.NewSilentLogger())

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
	require.NotNil(t, user.ID)
	assert.Equal(t, int64(5), *user.ID)
}
