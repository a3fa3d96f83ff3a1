package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	"github.com/chainsafe/canton-identity/pkg/auth"
	"github.com/chainsafe/canton-identity/pkg/config"
	"github.com/chainsafe/canton-identity/pkg/datastore"
	"github.com/chainsafe/canton-identity/pkg/identity"
	identityservice "github.com/chainsafe/canton-identity/pkg/identity/service"
	"github.com/chainsafe/canton-identity/pkg/identity/service/mocks"
	"github.com/chainsafe/canton-identity/pkg/migrations/identitydb"
	"github.com/chainsafe/canton-identity/pkg/participant"
	"github.com/chainsafe/canton-identity/pkg/pgutil"
	"github.com/chainsafe/canton-identity/pkg/registry"
)

type staticValidator struct {
	token   string
	subject string
}

func (v staticValidator) Subject(_ context.Context, token string) (string, error) {
	if token != v.token {
		return "", errors.New("bad token")
	}
	return v.subject, nil
}

func contextWithSubject(want string) any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		sub, ok := auth.SubjectFromContext(ctx)
		return ok && sub == want
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("database:\n  user: test\n"))
	require.NoError(t, err)
	return cfg
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newRouter(testConfig(t), mocks.NewService(t), registry.NewManager(nil), nil, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "identity_http_requests_total")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Monitoring.Enabled = false
	router := newRouter(cfg, mocks.NewService(t), registry.NewManager(nil), nil, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_IdentityRoutesRequireBearerToken(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		GetParticipant(contextWithSubject("alice"), "dogeid1").
		Return(participant.New("org.doge", "Doge", "DOGE_1"), nil).
		Once()

	validator := staticValidator{token: "good", subject: "alice"}
	router := newRouter(testConfig(t), svc, registry.NewManager(nil), validator, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/identities/dogeid1", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/identities/dogeid1", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/identities/dogeid1", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// registry routes stay open
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/participants", strings.NewReader("{")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdapters_PropagateErrorsAsNilInterfaces(t *testing.T) {
	ctx := context.Background()

	col, err := NewDataService(datastore.NewStore(nil)).GetCollection(ctx, "")
	require.ErrorIs(t, err, datastore.ErrInvalidName)
	require.Nil(t, col)

	reg, err := NewRegistryManager(registry.NewManager(nil)).Get(ctx, "Asset", "org.doge.Doge")
	require.True(t, apperrors.Is(err, apperrors.CategoryNotSupported))
	require.Nil(t, reg)
}

func TestIdentityServer_EndToEnd(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, identitydb.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	manager := registry.NewManager(db)
	svc := identityservice.NewService(
		NewDataService(datastore.NewStore(db)),
		NewRegistryManager(manager),
		zap.NewNop(),
	)
	router := newRouter(testConfig(t), svc, manager, nil, zap.NewNop())

	do := func(method, target, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, target, bytes.NewBufferString(body)))
		return rec
	}

	// unknown participant
	rec := do(http.MethodPost, "/identities", `{"participant":"org.doge.Doge#DOGE_1","user_id":"dogeid1"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Participant 'org.doge.Doge#DOGE_1' does not exist")

	rec = do(http.MethodPost, "/participants", `{"namespace":"org.doge","type":"Doge","id":"DOGE_1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodGet, "/participants/"+url.PathEscape("org.doge.Doge#DOGE_1"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/identities", `{"participant":"org.doge.Doge#DOGE_1","user_id":"dogeid1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var mapping identity.Mapping
	col, err := datastore.NewStore(db).GetCollection(ctx, identity.CollectionName)
	require.NoError(t, err)
	require.NoError(t, col.Get(ctx, "dogeid1", &mapping))
	require.Equal(t, "org.doge.Doge#DOGE_1", mapping.Participant)
	pgutil.AssertRowCount(t, db, "data_objects", 1)

	rec = do(http.MethodPost, "/identities", `{"participant":"org.doge.Doge#DOGE_1","user_id":"dogeid1"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "Found an existing mapping for user ID 'dogeid1'")

	rec = do(http.MethodGet, "/identities/dogeid1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p participant.Participant
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	require.Equal(t, "DOGE_1", p.ID)

	rec = do(http.MethodDelete, "/identities/dogeid1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	pgutil.AssertRowCount(t, db, "data_objects", 0)

	rec = do(http.MethodDelete, "/identities/dogeid1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(http.MethodGet, "/identities/dogeid1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
