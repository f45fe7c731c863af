package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http/middleware"
	appjwt "github.com/yaskovbs/My-Second-Project/internal/app/auth/jwt"
	"github.com/yaskovbs/My-Second-Project/internal/infra/config"
)

func testTokens(t *testing.T) *appjwt.TokenServiceImpl {
	t.Helper()
	tokens, err := appjwt.NewTokenService(&config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Minute,
		JWTIssuer: "test",
	})
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

func authRouter(t *testing.T) (*gin.Engine, *appjwt.TokenServiceImpl) {
	gin.SetMode(gin.TestMode)
	tokens := testTokens(t)
	r := gin.New()
	r.GET("/", middleware.RequireAuth(tokens), func(c *gin.Context) {
		uid, ok := middleware.AuthUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": uid.String()})
	})
	return r, tokens
}

func doAuthReq(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _ := authRouter(t)
	w := doAuthReq(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
	if want := `"authorization header missing"`; !contains(w.Body.String(), want) {
		t.Fatalf("body %s must mention the missing header", w.Body.String())
	}
}

func TestRequireAuth_BadShape(t *testing.T) {
	r, tokens := authRouter(t)
	token, _, _ := tokens.Generate(uuid.New())

	for _, header := range []string{"Token " + token, token, "Bearer"} {
		if w := doAuthReq(r, header); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: want 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r, _ := authRouter(t)
	if w := doAuthReq(r, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r, _ := authRouter(t)
	expired, err := appjwt.NewTokenService(&config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  -time.Minute,
		JWTIssuer: "test",
	})
	if err != nil {
		t.Fatal(err)
	}
	token, _, _ := expired.Generate(uuid.New())
	if w := doAuthReq(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, tokens := authRouter(t)
	uid := uuid.New()
	token, _, _ := tokens.Generate(uid)

	w := doAuthReq(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	if !contains(w.Body.String(), uid.String()) {
		t.Fatalf("identity must reach the handler, body: %s", w.Body.String())
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
