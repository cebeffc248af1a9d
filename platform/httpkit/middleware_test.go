package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type stubJWTConfig struct {
	secret string
}

func (s stubJWTConfig) GetJWTSecret() string { return s.secret }

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func newAuthTestRouter(cfg stubJWTConfig, handlerCalls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", AuthRequired(cfg), func(c *gin.Context) {
		*handlerCalls++
		id := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.UserID().String(), "username": id.Username()})
	})
	return engine
}

func TestAuthRequiredMissingHeaderSignalsExactlyOnce(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"Missing token"}` {
		t.Fatalf("expected a single missing-token failure, got body %q", body)
	}
	if calls != 0 {
		t.Fatalf("handler must not run after auth failure, ran %d times", calls)
	}
}

func TestAuthRequiredWrongSchemeSignalsExactlyOnce(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"Invalid token"}` {
		t.Fatalf("expected a single invalid-token failure, got body %q", body)
	}
	if calls != 0 {
		t.Fatalf("handler must not run after auth failure, ran %d times", calls)
	}
}

func TestAuthRequiredRejectsBadSignature(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	token := signTestToken(t, "other-secret", jwt.MapClaims{
		"id":       "0b36853f-1a22-4ce0-b8b7-9902b9e1f6a5",
		"username": "paco",
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"Invalid token"}` {
		t.Fatalf("expected invalid-token message, got body %q", body)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	token := signTestToken(t, "secret", jwt.MapClaims{
		"id":       "0b36853f-1a22-4ce0-b8b7-9902b9e1f6a5",
		"username": "paco",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthRequiredAttachesIdentity(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	token := signTestToken(t, "secret", jwt.MapClaims{
		"id":       "0b36853f-1a22-4ce0-b8b7-9902b9e1f6a5",
		"username": "paco",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	body := rec.Body.String()
	if body != `{"userId":"0b36853f-1a22-4ce0-b8b7-9902b9e1f6a5","username":"paco"}` {
		t.Fatalf("unexpected identity payload: %s", body)
	}
}

func TestAuthRequiredRejectsTokenWithoutUserID(t *testing.T) {
	calls := 0
	engine := newAuthTestRouter(stubJWTConfig{secret: "secret"}, &calls)

	token := signTestToken(t, "secret", jwt.MapClaims{"username": "paco"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token without id claim, got %d", rec.Code)
	}
	if calls != 0 {
		t.Fatal("handler must not run without a resolvable user id")
	}
}
