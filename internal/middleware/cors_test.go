package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsEngine(allowedOrigins []string, environment string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORS(allowedOrigins, environment))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func corsRequest(engine *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowAllInDevelopment(t *testing.T) {
	t.Parallel()

	engine := corsEngine(nil, "development")
	rec := corsRequest(engine, "https://anything.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example" {
		t.Fatalf("Allow-Origin = %q, want the request origin", got)
	}
}

func TestCORS_ProductionRefusesAllowAll(t *testing.T) {
	t.Parallel()

	// Responses carry Allow-Credentials for the session cookie, so an
	// unconfigured production deployment must not reflect origins.
	engine := corsEngine(nil, "production")
	rec := corsRequest(engine, "https://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Allow-Origin = %q, want unset", got)
	}
}

func TestCORS_ProductionConfiguredOrigins(t *testing.T) {
	t.Parallel()

	engine := corsEngine([]string{"https://portal.cyberstudy.com"}, "production")

	rec := corsRequest(engine, "https://portal.cyberstudy.com")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.cyberstudy.com" {
		t.Fatalf("Allow-Origin = %q, want the configured origin", got)
	}

	rec = corsRequest(engine, "https://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Allow-Origin = %q for unknown origin, want unset", got)
	}
}
