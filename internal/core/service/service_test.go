package service

import (
	"context"
	"testing"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/infrastructure/sqlite"
)

// testServices holds the service graph wired to an in-memory database
type testServices struct {
	db      *sqlite.DB
	artists *ArtistService
	release *ReleaseService
	tracks  *TrackService
	tags    *TagService
	users   *UserService
	auth    *AuthService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	artistRepo := sqlite.NewArtistRepository(db)
	releaseRepo := sqlite.NewReleaseRepository(db)
	trackRepo := sqlite.NewTrackRepository(db)
	tagRepo := sqlite.NewTagRepository(db)
	typeRepo := sqlite.NewReleaseTypeRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	authServ := NewAuthService(userRepo, "test-secret")
	releaseServ := NewReleaseService(releaseRepo, artistRepo, typeRepo, tagRepo)

	return &testServices{
		db:      db,
		artists: NewArtistService(artistRepo, releaseRepo),
		release: releaseServ,
		tracks:  NewTrackService(trackRepo, releaseServ),
		tags:    NewTagService(tagRepo, releaseRepo),
		users:   NewUserService(userRepo, authServ),
		auth:    authServ,
	}
}

func (ts *testServices) mustCreateArtist(t *testing.T, name string) *domain.Artist {
	t.Helper()
	r := ts.artists.CreateArtist(context.Background(), domain.NewArtist(name))
	if r.IsFailure() {
		t.Fatalf("failed to create artist: %v", r.Err())
	}
	return r.Value()
}

func (ts *testServices) mustCreateRelease(t *testing.T, artistID, title, typeSlug string) *domain.Release {
	t.Helper()
	r := ts.release.CreateRelease(context.Background(), domain.NewRelease(artistID, title, typeSlug))
	if r.IsFailure() {
		t.Fatalf("failed to create release: %v", r.Err())
	}
	return r.Value()
}

func (ts *testServices) releaseRowCount(t *testing.T) int {
	t.Helper()
	var count int
	if err := ts.db.QueryRow(`SELECT COUNT(*) FROM release`).Scan(&count); err != nil {
		t.Fatalf("failed to count release rows: %v", err)
	}
	return count
}
