package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/internal/infrastructure/sqlite"
	"github.com/annelie/wax/pkg/config"
	"github.com/annelie/wax/pkg/result"
)

// setupServer builds a full server against an in-memory database and
// returns tokens for an editor and an admin.
func setupServer(t *testing.T) (srv *Server, editorToken, adminToken string) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	artistRepo := sqlite.NewArtistRepository(db)
	releaseRepo := sqlite.NewReleaseRepository(db)
	typeRepo := sqlite.NewReleaseTypeRepository(db)
	trackRepo := sqlite.NewTrackRepository(db)
	tagRepo := sqlite.NewTagRepository(db)

	authService := service.NewAuthService(userRepo, "test-secret")
	userService := service.NewUserService(userRepo, authService)
	artistService := service.NewArtistService(artistRepo, releaseRepo)
	releaseService := service.NewReleaseService(releaseRepo, artistRepo, typeRepo, tagRepo)
	trackService := service.NewTrackService(trackRepo, releaseService)
	tagService := service.NewTagService(tagRepo, releaseRepo)

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
		if err := userRepo.Create(context.Background(), domain.NewUser(u.username, u.username+"@example.com", hash, u.role)); err != nil {
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

	cfg := &config.Config{JWTSecretKey: "test-secret"}
	srv = NewServer(cfg, authService, userService, artistService, releaseService, trackService, tagService)

	return srv, mintToken("edda"), mintToken("astrid")
}

func (s *Server) doRequest(t *testing.T, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseProblem(t *testing.T, w *httptest.ResponseRecorder) result.ProblemResponse {
	t.Helper()

	var problem result.ProblemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse problem response: %v\nBody: %s", err, w.Body.String())
	}
	return problem
}

// Deletes on catalog aggregates are admin-only; track deletion is open to
// any authenticated user.
func TestRoutes_DeletePolicy(t *testing.T) {
	srv, editorToken, adminToken := setupServer(t)

	adminOnlyPaths := []string{"/artists/x", "/releases/x", "/tags/x"}
	for _, path := range adminOnlyPaths {
		w := srv.doRequest(t, http.MethodDelete, path, editorToken)
		if w.Code != http.StatusForbidden {
			t.Errorf("editor DELETE %s: expected 403, got %d", path, w.Code)
		}
	}

	// An editor deleting a missing track reaches the handler: the outcome
	// is the domain's NoContent problem, not a role refusal.
	w := srv.doRequest(t, http.MethodDelete, "/tracks/no-such-id", editorToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("editor DELETE /tracks/:id: expected 404, got %d\nBody: %s", w.Code, w.Body.String())
	}
	if problem := parseProblem(t, w); problem.Code != result.CodeNoContent {
		t.Errorf("expected %s, got %s", result.CodeNoContent, problem.Code)
	}

	// Admins reach the handlers on the gated routes.
	w = srv.doRequest(t, http.MethodDelete, "/artists/no-such-id", adminToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("admin DELETE /artists/:id: expected 404, got %d", w.Code)
	}
}

func TestRoutes_PublicReadsNeedNoToken(t *testing.T) {
	srv, _, _ := setupServer(t)

	for _, path := range []string{"/artists", "/releases", "/tags", "/health"} {
		w := srv.doRequest(t, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s without token: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRoutes_MutationsNeedToken(t *testing.T) {
	srv, _, _ := setupServer(t)

	w := srv.doRequest(t, http.MethodPost, "/artists", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("POST /artists without token: expected 403, got %d", w.Code)
	}
	if problem := parseProblem(t, w); problem.Code != result.CodeForbidden {
		t.Errorf("expected %s, got %s", result.CodeForbidden, problem.Code)
	}
}
