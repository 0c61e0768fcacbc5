package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passgate/internal/audit"
	"passgate/internal/credstore"
	"passgate/internal/directory"
	internalhttp "passgate/internal/http"
	"passgate/internal/legacy"
	"passgate/internal/password"
	"passgate/internal/password/adapters"
	"passgate/internal/password/generator"
	"passgate/internal/password/handler"
	"passgate/internal/password/resettoken"
	id "passgate/pkg/domain"
)

type fixture struct {
	server *httptest.Server
	creds  *credstore.InMemoryStore
	dir    *directory.MemoryDirectory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	creds := credstore.NewInMemoryStore()
	minter := resettoken.NewMinter("test-signing-key", 15*time.Minute)
	modern := adapters.NewModernAdapter(creds, resettoken.NewInMemoryStore(), minter)
	selector := adapters.NewSelector(modern, 8, false)

	engine, err := password.NewEngine(generator.Generate)
	require.NoError(t, err)

	svc, err := password.NewService(selector, engine,
		password.WithAuditPublisher(audit.NewPublisher(audit.NewInMemoryStore())),
	)
	require.NoError(t, err)

	dir := directory.NewMemoryDirectory()
	logger := slog.New(slog.DiscardHandler)
	router := internalhttp.NewRouter(handler.New(svc, dir, logger))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &fixture{server: srv, creds: creds, dir: dir}
}

func (f *fixture) post(t *testing.T, userID string, body handler.ChangePasswordRequest) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(f.server.URL+"/users/"+userID+"/password", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleChangePassword(t *testing.T) {
	t.Run("modern change succeeds", func(t *testing.T) {
		f := newFixture(t)
		userID := id.NewUserID()
		require.NoError(t, f.creds.Set(t.Context(), userID, "correct1!"))
		f.dir.Add(directory.Entry{
			Identity: password.Identity{ID: userID, Username: "carol"},
			Backend:  password.BackendConfig{Kind: password.BackendModern, AccountAwareHashing: true},
		})

		resp := f.post(t, userID.String(), handler.ChangePasswordRequest{
			OldPassword: "correct1!",
			NewPassword: "newpass1!",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[handler.SuccessResponse](t, resp)
		assert.Equal(t, "ok", body.Status)
		assert.Empty(t, body.GeneratedPassword)
	})

	t.Run("legacy reset returns generated password", func(t *testing.T) {
		f := newFixture(t)
		provider := legacy.NewMemoryProvider(legacy.Settings{EnablePasswordReset: true})
		provider.AddAccount("bob", "old1!", "", "")
		userID := id.NewUserID()
		f.dir.Add(directory.Entry{
			Identity: password.Identity{ID: userID, Username: "bob"},
			Backend:  password.BackendConfig{Kind: password.BackendLegacy, Legacy: provider},
		})

		resp := f.post(t, userID.String(), handler.ChangePasswordRequest{Reset: true})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[handler.SuccessResponse](t, resp)
		assert.Len(t, body.GeneratedPassword, 12)
	})

	t.Run("rejection carries message and field", func(t *testing.T) {
		f := newFixture(t)
		provider := legacy.NewMemoryProvider(legacy.Settings{})
		provider.AddAccount("bob", "old1!", "", "")
		userID := id.NewUserID()
		f.dir.Add(directory.Entry{
			Identity: password.Identity{ID: userID, Username: "bob"},
			Backend:  password.BackendConfig{Kind: password.BackendLegacy, Legacy: provider},
		})

		resp := f.post(t, userID.String(), handler.ChangePasswordRequest{NewPassword: "x"})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decode[handler.FailureResponse](t, resp)
		assert.Equal(t, "oldPassword", body.Field)
		assert.Contains(t, body.Message, "old password")
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		f := newFixture(t)
		resp := f.post(t, id.NewUserID().String(), handler.ChangePasswordRequest{NewPassword: "x"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed user id is 400", func(t *testing.T) {
		f := newFixture(t)
		resp := f.post(t, "not-a-uuid", handler.ChangePasswordRequest{NewPassword: "x"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
