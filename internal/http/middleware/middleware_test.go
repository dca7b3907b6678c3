package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/services"
)

// stubAuth accepts the tokens it knows and rejects everything else.
type stubAuth struct {
	services.AuthService
	tokens map[string]ctxutil.RequestData
}

func (s stubAuth) SetContextFromToken(ctx context.Context, token string) (context.Context, error) {
	rd, ok := s.tokens[token]
	if !ok {
		return ctx, errors.New("unknown token")
	}
	rd.TokenString = token
	return ctxutil.WithRequestData(ctx, &rd), nil
}

func (s stubAuth) GetAccessTTL() time.Duration { return time.Minute }

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.Nop(), stubAuth{tokens: map[string]ctxutil.RequestData{
		"user-token":  {UserID: uuid.New(), Role: types.RoleUser},
		"admin-token": {UserID: uuid.New(), Role: types.RoleAdmin},
	}})
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.GET("/me", am.RequireAuth(), ok)
	r.GET("/stations", am.RequireAuth(), am.RequireRole(types.RoleAdmin), ok)
	return r
}

func serve(r http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	r := authRouter(t)

	if rec := serve(r, "/me", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status=%d", rec.Code)
	}
	rec := serve(r, "/me", map[string]string{"Authorization": "Bearer nope"})
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), `"code":"unauthorized"`) {
		t.Fatalf("bad token: %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(r, "/me", map[string]string{"Authorization": "bearer user-token"}); rec.Code != http.StatusNoContent {
		t.Fatalf("header token: status=%d", rec.Code)
	}
	if rec := serve(r, "/me?token=user-token", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("query token: status=%d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := authRouter(t)

	rec := serve(r, "/stations", map[string]string{"Authorization": "Bearer user-token"})
	if rec.Code != http.StatusForbidden || !strings.Contains(rec.Body.String(), `"code":"forbidden"`) {
		t.Fatalf("user on admin route: %d %s", rec.Code, rec.Body.String())
	}
	if rec := serve(r, "/stations", map[string]string{"Authorization": "Bearer admin-token"}); rec.Code != http.StatusNoContent {
		t.Fatalf("admin: status=%d", rec.Code)
	}
}

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var seen *ctxutil.TraceData
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := serve(r, "/x", map[string]string{HeaderRequestID: "req-1", HeaderTraceID: "trace-1"})
	if seen == nil || seen.RequestID != "req-1" || seen.TraceID != "trace-1" {
		t.Fatalf("trace data=%+v", seen)
	}
	if rec.Header().Get(HeaderRequestID) != "req-1" {
		t.Fatalf("request id not echoed")
	}

	rec = serve(r, "/x", map[string]string{HeaderRequestID: strings.Repeat("a", maxHeaderIDLen+1)})
	got := rec.Header().Get(HeaderRequestID)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("oversized id not replaced: %q", got)
	}
	if seen.TraceID != got {
		t.Fatalf("trace id should fall back to request id: %+v", seen)
	}
}

func TestRouteResource(t *testing.T) {
	cases := map[string]string{
		"/api/stations/:id": "stations",
		"/api/lorries":      "lorries",
		"/api/auth/sign-in": "auth",
		"/healthcheck":      "",
		"unmatched":         "",
	}
	for route, want := range cases {
		if got := routeResource(route); got != want {
			t.Fatalf("routeResource(%q)=%q want %q", route, got, want)
		}
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/api/stations/:id", func(c *gin.Context) { c.String(http.StatusTeapot, c.Param("id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stations/7", nil))
	if w.Code != http.StatusTeapot || w.Body.String() != "7" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r2 := gin.New()
	r2.Use(RequestLogger(nil))
	r2.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("nil logger: got %d", w.Code)
	}
}
