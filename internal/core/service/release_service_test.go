package service

import (
	"context"
	"slices"
	"testing"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/pkg/result"
)

func TestCreateRelease_Success(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Boards of Canada")

	r := ts.release.CreateRelease(context.Background(), domain.NewRelease(artist.ID, "Geogaddi", "album"))
	if r.IsFailure() {
		t.Fatalf("expected success, got %v", r.Err())
	}
	if r.Value().Title != "Geogaddi" {
		t.Errorf("unexpected title %q", r.Value().Title)
	}
}

func TestCreateRelease_InvalidReleaseTypeSlug(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Autechre")

	r := ts.release.CreateRelease(context.Background(), domain.NewRelease(artist.ID, "Tri Repetae", "boxset"))
	if !r.IsFailure() {
		t.Fatal("expected failure for invalid release type slug")
	}
	if r.Err().Code != result.CodeValidation {
		t.Errorf("expected %s, got %s", result.CodeValidation, r.Err().Code)
	}
	if !slices.Contains(r.Err().Details, "ReleaseTypeSlug is invalid") {
		t.Errorf("expected detail about ReleaseTypeSlug, got %v", r.Err().Details)
	}
	if got := ts.releaseRowCount(t); got != 0 {
		t.Errorf("no release row should be persisted, found %d", got)
	}
}

func TestCreateRelease_AggregatesViolations(t *testing.T) {
	ts := setupServices(t)

	rel := &domain.Release{ID: "x", ArtistID: "no-such-artist", ReleaseTypeSlug: "boxset"}
	r := ts.release.CreateRelease(context.Background(), rel)
	if !r.IsFailure() {
		t.Fatal("expected failure")
	}
	details := r.Err().Details
	want := []string{"Title is required", "ArtistId is invalid", "ReleaseTypeSlug is invalid"}
	if len(details) != len(want) {
		t.Fatalf("expected %d details, got %v", len(want), details)
	}
	for i, w := range want {
		if details[i] != w {
			t.Errorf("detail %d: expected %q, got %q", i, w, details[i])
		}
	}
}

func TestGetRelease_SoftDeletedIsGone(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Burial")
	rel := ts.mustCreateRelease(t, artist.ID, "Untrue", "album")

	if r := ts.release.DeleteRelease(context.Background(), rel.ID); r.IsFailure() {
		t.Fatalf("delete failed: %v", r.Err())
	}

	r := ts.release.GetRelease(context.Background(), rel.ID)
	if !r.IsFailure() {
		t.Fatal("expected failure for soft-deleted release")
	}
	if r.Err().Code != result.CodeGone {
		t.Errorf("expected %s, got %s", result.CodeGone, r.Err().Code)
	}
}

func TestDeleteRelease_MissingIsNoContent(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Aphex Twin")
	ts.mustCreateRelease(t, artist.ID, "Drukqs", "album")
	before := ts.releaseRowCount(t)

	r := ts.release.DeleteRelease(context.Background(), "does-not-exist")
	if !r.IsFailure() {
		t.Fatal("expected failure for missing release")
	}
	if r.Err().Code != result.CodeNoContent {
		t.Errorf("expected %s, got %s", result.CodeNoContent, r.Err().Code)
	}
	if got := ts.releaseRowCount(t); got != before {
		t.Errorf("delete of missing release must not mutate rows: before %d, after %d", before, got)
	}
}

func TestUpdateRelease_ValidButMissingIsNotFound(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Four Tet")

	// Valid in every field, but the ID does not exist. Validation success
	// must not imply existence.
	rel := domain.NewRelease(artist.ID, "Rounds", "album")
	rel.ID = "missing-id"

	r := ts.release.UpdateRelease(context.Background(), rel)
	if !r.IsFailure() {
		t.Fatal("expected failure for missing release")
	}
	if r.Err().Code != result.CodeNotFound {
		t.Errorf("expected %s, got %s", result.CodeNotFound, r.Err().Code)
	}
}

func TestSetTags_UnknownSlugFailsAndPreservesSet(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Plaid")
	rel := ts.mustCreateRelease(t, artist.ID, "Double Figure", "album")

	if r := ts.tags.CreateTag(context.Background(), domain.NewTag("idm", "IDM")); r.IsFailure() {
		t.Fatalf("failed to create tag: %v", r.Err())
	}
	if r := ts.release.SetTags(context.Background(), rel.ID, []string{"idm"}); r.IsFailure() {
		t.Fatalf("failed to set tags: %v", r.Err())
	}

	r := ts.release.SetTags(context.Background(), rel.ID, []string{"idm", "vaporwave"})
	if !r.IsFailure() {
		t.Fatal("expected failure for unknown tag slug")
	}
	if r.Err().Code != result.CodeValidation {
		t.Errorf("expected %s, got %s", result.CodeValidation, r.Err().Code)
	}

	tags := ts.release.Tags(context.Background(), rel.ID)
	if tags.IsFailure() {
		t.Fatalf("failed to read tags: %v", tags.Err())
	}
	if len(tags.Value()) != 1 || tags.Value()[0].Slug != "idm" {
		t.Errorf("tag set must be untouched on failure, got %v", tags.Value())
	}
}

func TestSetTags_RepeatedSlugCollapses(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Plaid")
	rel := ts.mustCreateRelease(t, artist.ID, "Spokes", "album")

	if r := ts.tags.CreateTag(context.Background(), domain.NewTag("idm", "IDM")); r.IsFailure() {
		t.Fatalf("failed to create tag: %v", r.Err())
	}

	r := ts.release.SetTags(context.Background(), rel.ID, []string{"idm", "idm"})
	if r.IsFailure() {
		t.Fatalf("repeated slug should collapse, not fail: %v", r.Err())
	}
	if len(r.Value()) != 1 || r.Value()[0].Slug != "idm" {
		t.Errorf("expected a single idm membership, got %v", r.Value())
	}
}

func TestDeleteArtist_WithReleasesRefused(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Squarepusher")
	ts.mustCreateRelease(t, artist.ID, "Feed Me Weird Things", "album")

	r := ts.artists.DeleteArtist(context.Background(), artist.ID)
	if !r.IsFailure() {
		t.Fatal("expected failure for artist with releases")
	}
	if r.Err().Code != result.CodeValidation {
		t.Errorf("expected %s, got %s", result.CodeValidation, r.Err().Code)
	}

	// The artist must still be there.
	if g := ts.artists.GetArtist(context.Background(), artist.ID); g.IsFailure() {
		t.Errorf("artist should survive a refused delete: %v", g.Err())
	}
}
