package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timers/internal/logging"
	"timers/internal/model"
	"timers/internal/service"
)

type stubAuthenticator struct {
	identities map[string]*service.Identity
	err        error
	calls      int
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (*service.Identity, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.identities[token], nil
}

func newSessionEngine(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Session(auth, logging.Discard()))
	engine.GET("/whoami", func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, user.Username+" "+CurrentIdentity(c).SessionID)
	})
	return engine
}

func serve(engine http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestSession_AttachesIdentity(t *testing.T) {
	auth := &stubAuthenticator{identities: map[string]*service.Identity{
		"tok": {SessionID: "s-1", User: &model.User{ID: "u-1", Username: "alice"}},
	}}
	recorder := serve(newSessionEngine(auth), "/whoami?sessionId=tok")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "alice s-1", recorder.Body.String())
}

func TestSession_MissingOrUnknownTokenProceeds(t *testing.T) {
	auth := &stubAuthenticator{identities: map[string]*service.Identity{}}
	engine := newSessionEngine(auth)

	assert.Equal(t, "anonymous", serve(engine, "/whoami").Body.String())
	assert.Zero(t, auth.calls)

	assert.Equal(t, "anonymous", serve(engine, "/whoami?sessionId=unknown").Body.String())
	assert.Equal(t, 1, auth.calls)
}

func TestSession_StoreFailureAborts(t *testing.T) {
	recorder := serve(newSessionEngine(&stubAuthenticator{err: errors.New("db down")}), "/whoami?sessionId=tok")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "internal_error")
}

func TestRequestLogger_OmitsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	engine := gin.New()
	engine.Use(RequestLogger(logging.New(&buf, "info")))
	engine.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(engine, "/missing?sessionId=secret-token")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "path=/missing")
	assert.NotContains(t, out, "secret-token")
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:3000"}))
	engine.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://evil.test")
	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
