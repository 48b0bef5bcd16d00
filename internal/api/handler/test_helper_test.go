package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/dto"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/internal/infrastructure/sqlite"
	"github.com/annelie/wax/pkg/result"
)

// testEnv holds all test dependencies
type testEnv struct {
	db             *sqlite.DB
	router         *gin.Engine
	artistService  *service.ArtistService
	releaseService *service.ReleaseService
	trackService   *service.TrackService
	tagService     *service.TagService
}

// setupTestEnv creates a test environment with an in-memory SQLite database.
// Routes are registered without auth middleware; auth behavior is covered by
// the middleware and service tests.
func setupTestEnv(t *testing.T) *testEnv {
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

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	artistHandler := NewArtistHandler(artistService)
	releaseHandler := NewReleaseHandler(releaseService)
	trackHandler := NewTrackHandler(trackService)
	tagHandler := NewTagHandler(tagService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/auth/token", authHandler.Token)
	router.POST("/users", userHandler.SignUp)

	router.GET("/artists", artistHandler.ListArtists)
	router.GET("/artists/:id", artistHandler.GetArtist)
	router.POST("/artists", artistHandler.CreateArtist)
	router.PUT("/artists/:id", artistHandler.UpdateArtist)
	router.DELETE("/artists/:id", artistHandler.DeleteArtist)

	router.GET("/releases", releaseHandler.ListReleases)
	router.GET("/releases/:id", releaseHandler.GetRelease)
	router.POST("/releases", releaseHandler.CreateRelease)
	router.PUT("/releases/:id", releaseHandler.UpdateRelease)
	router.DELETE("/releases/:id", releaseHandler.DeleteRelease)
	router.PUT("/releases/:id/tags", releaseHandler.SetReleaseTags)
	router.GET("/releases/:id/tracks", trackHandler.ListTracks)
	router.POST("/releases/:id/tracks", trackHandler.AddTrack)

	router.PUT("/tracks/:id", trackHandler.UpdateTrack)
	router.DELETE("/tracks/:id", trackHandler.DeleteTrack)

	router.GET("/tags", tagHandler.ListTags)
	router.POST("/tags", tagHandler.CreateTag)

	return &testEnv{
		db:             db,
		router:         router,
		artistService:  artistService,
		releaseService: releaseService,
		trackService:   trackService,
		tagService:     tagService,
	}
}

// seedCatalog populates artists and releases for filtering tests
func (env *testEnv) seedCatalog(t *testing.T) (artists []*domain.Artist, releases []*domain.Release) {
	t.Helper()

	seed := []struct {
		name    string
		country string
		titles  []string
	}{
		{"Alpha Quartet", "SE", []string{"First Light", "Night Drive"}},
		{"Beta Collective", "DE", []string{"Steel City"}},
		{"Gamma Trio", "SE", []string{"Harbour", "Low Tide", "Crossing"}},
	}

	for _, s := range seed {
		artist := domain.NewArtist(s.name)
		country := s.country
		artist.Country = &country

		res := env.artistService.CreateArtist(context.Background(), artist)
		if res.IsFailure() {
			t.Fatalf("failed to seed artist %s: %v", s.name, res.Err())
		}
		artists = append(artists, res.Value())

		for _, title := range s.titles {
			relRes := env.releaseService.CreateRelease(context.Background(), domain.NewRelease(artist.ID, title, "album"))
			if relRes.IsFailure() {
				t.Fatalf("failed to seed release %s: %v", title, relRes.Err())
			}
			releases = append(releases, relRes.Value())
		}
	}

	return artists, releases
}

// makeRequest performs a request with an optional JSON body
func (env *testEnv) makeRequest(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func parseArtistListResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ArtistListResponse {
	t.Helper()

	var resp dto.ArtistListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseReleaseListResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ReleaseListResponse {
	t.Helper()

	var resp dto.ReleaseListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

func parseProblemResponse(t *testing.T, w *httptest.ResponseRecorder) result.ProblemResponse {
	t.Helper()

	var resp result.ProblemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse problem response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
