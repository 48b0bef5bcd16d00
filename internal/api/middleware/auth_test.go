package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/internal/infrastructure/sqlite"
	"github.com/annelie/wax/pkg/result"
)

// setupAuthRouter wires a router with an authenticated route and an
// admin-gated route, and returns tokens for an editor and an admin.
func setupAuthRouter(t *testing.T) (router *gin.Engine, editorToken, adminToken string) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, "test-secret")

	for _, u := range []struct {
		username string
		role     domain.Role
	}{
		{"edda", domain.RoleEditor},
		{"astrid", domain.RoleAdmin},
	} {
		hash, err := authService.HashPassword("Sekrit123")
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user := domain.NewUser(u.username, u.username+"@example.com", hash, u.role)
		if err := userRepo.Create(context.Background(), user); err != nil {
			t.Fatalf("failed to create user %s: %v", u.username, err)
		}
	}

	mintToken := func(username string) string {
		r := authService.Token(context.Background(), username, "Sekrit123")
		if r.IsFailure() {
			t.Fatalf("failed to issue token for %s: %v", username, r.Err())
		}
		return r.Value()
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()

	authMiddleware := AuthMiddleware(authService)
	router.GET("/private", authMiddleware, func(c *gin.Context) {
		claims, _ := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	router.DELETE("/guarded", authMiddleware, RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusNoContent, nil)
	})

	return router, mintToken("edda"), mintToken("astrid")
}

func doRequest(t *testing.T, router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set(AuthHeaderKey, authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic Zm9vOmJhcg=="},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, "/private", tt.authHeader)
			if w.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d\nBody: %s", w.Code, w.Body.String())
			}

			var problem result.ProblemResponse
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
				t.Fatalf("failed to parse problem response: %v\nBody: %s", err, w.Body.String())
			}
			if problem.Code != result.CodeForbidden {
				t.Errorf("expected %s, got %s", result.CodeForbidden, problem.Code)
			}
		})
	}
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	router, editorToken, _ := setupAuthRouter(t)

	w := doRequest(t, router, http.MethodGet, "/private", "Bearer "+editorToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body["username"] != "edda" {
		t.Errorf("expected claims for edda, got %q", body["username"])
	}
}

func TestRequireRole(t *testing.T) {
	router, editorToken, adminToken := setupAuthRouter(t)

	w := doRequest(t, router, http.MethodDelete, "/guarded", "Bearer "+editorToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("editor should be refused on the admin route, got %d", w.Code)
	}

	var problem result.ProblemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse problem response: %v\nBody: %s", err, w.Body.String())
	}
	if problem.Code != result.CodeForbidden {
		t.Errorf("expected %s, got %s", result.CodeForbidden, problem.Code)
	}

	w = doRequest(t, router, http.MethodDelete, "/guarded", "Bearer "+adminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("admin should pass the admin route, got %d\nBody: %s", w.Code, w.Body.String())
	}
}
