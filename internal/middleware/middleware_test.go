package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberia-admin/internal/domain/access"
	"github.com/BruksfildServices01/barberia-admin/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryStore struct {
	records map[string]session.Record
}

func (m *memoryStore) Save(_ context.Context, rec session.Record, _ time.Duration) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*session.Record, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &rec, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func protectedRouter(t *testing.T, caps access.Set) (*gin.Engine, string) {
	t.Helper()

	issuer := session.NewIssuer("secret", time.Hour)
	store := &memoryStore{records: map[string]session.Record{}}
	opened, err := session.NewManager(issuer, store).Open(context.Background(), 3, "ana", 1, caps)
	require.NoError(t, err)

	r := gin.New()
	g := r.Group("/", SessionGuard(session.NewGuard(issuer, store)))
	g.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.MustGet(ContextAuthUserID), "actor": *ActorID(c)})
	})
	g.GET("/clients", RequireCapability(access.Clients), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, opened.Token
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionGuard(t *testing.T) {
	r, token := protectedRouter(t, access.NewSet())

	w := do(r, http.MethodGet, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":3,"actor":3}`, w.Body.String())

	w = do(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "missing_token", body["error_code"])

	w = do(r, http.MethodGet, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestRequireCapability(t *testing.T) {
	r, token := protectedRouter(t, access.NewSet(access.Appointments))
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/clients", token).Code)

	r, token = protectedRouter(t, access.NewSet(access.Clients))
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/clients", token).Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(NewIPRateLimiter(2)), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/login", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/login", "").Code)

	w := do(r, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := do(r, http.MethodGet, "/ping", "")
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "6f1c1e0a-6d7e-4b8f-9d43-0c9d1f2a3b4c")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "6f1c1e0a-6d7e-4b8f-9d43-0c9d1f2a3b4c", w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := do(r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
