package service

import (
	"context"
	"slices"
	"testing"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/pkg/result"
)

func TestAddTrack_Success(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Portishead")
	rel := ts.mustCreateRelease(t, artist.ID, "Dummy", "album")

	r := ts.tracks.AddTrack(context.Background(), domain.NewTrack(rel.ID, 1, "Mysterons"))
	if r.IsFailure() {
		t.Fatalf("expected success, got %v", r.Err())
	}
}

func TestAddTrack_DuplicatePosition(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Portishead")
	rel := ts.mustCreateRelease(t, artist.ID, "Dummy", "album")

	if r := ts.tracks.AddTrack(context.Background(), domain.NewTrack(rel.ID, 1, "Mysterons")); r.IsFailure() {
		t.Fatalf("first track failed: %v", r.Err())
	}

	r := ts.tracks.AddTrack(context.Background(), domain.NewTrack(rel.ID, 1, "Sour Times"))
	if !r.IsFailure() {
		t.Fatal("expected failure for duplicate position")
	}
	if r.Err().Code != result.CodeValidation {
		t.Errorf("expected %s, got %s", result.CodeValidation, r.Err().Code)
	}
	if !slices.Contains(r.Err().Details, "Position 1 is already taken") {
		t.Errorf("expected position detail, got %v", r.Err().Details)
	}
}

func TestAddTrack_MissingReleasePropagatesNotFound(t *testing.T) {
	ts := setupServices(t)

	r := ts.tracks.AddTrack(context.Background(), domain.NewTrack("no-such-release", 1, "Orphan"))
	if !r.IsFailure() {
		t.Fatal("expected failure")
	}
	// The release lookup's error travels unchanged; no reclassification.
	if r.Err().Code != result.CodeNotFound {
		t.Errorf("expected %s, got %s", result.CodeNotFound, r.Err().Code)
	}
}

func TestUpdateTrack_KeepOwnPosition(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Massive Attack")
	rel := ts.mustCreateRelease(t, artist.ID, "Mezzanine", "album")

	created := ts.tracks.AddTrack(context.Background(), domain.NewTrack(rel.ID, 1, "Angel"))
	if created.IsFailure() {
		t.Fatalf("create failed: %v", created.Err())
	}

	track := created.Value()
	track.Title = "Angel (Remastered)"
	r := ts.tracks.UpdateTrack(context.Background(), track)
	if r.IsFailure() {
		t.Fatalf("a track must be allowed to keep its own position: %v", r.Err())
	}
}

func TestDeleteTrack_MissingIsNoContent(t *testing.T) {
	ts := setupServices(t)

	r := ts.tracks.DeleteTrack(context.Background(), "no-such-track")
	if !r.IsFailure() {
		t.Fatal("expected failure")
	}
	if r.Err().Code != result.CodeNoContent {
		t.Errorf("expected %s, got %s", result.CodeNoContent, r.Err().Code)
	}
}

func TestListTracks_OrderedByPosition(t *testing.T) {
	ts := setupServices(t)
	artist := ts.mustCreateArtist(t, "Massive Attack")
	rel := ts.mustCreateRelease(t, artist.ID, "Mezzanine", "album")

	for _, tr := range []struct {
		pos   int
		title string
	}{{3, "Teardrop"}, {1, "Angel"}, {2, "Risingson"}} {
		if r := ts.tracks.AddTrack(context.Background(), domain.NewTrack(rel.ID, tr.pos, tr.title)); r.IsFailure() {
			t.Fatalf("failed to add track %q: %v", tr.title, r.Err())
		}
	}

	r := ts.tracks.ListTracks(context.Background(), rel.ID)
	if r.IsFailure() {
		t.Fatalf("list failed: %v", r.Err())
	}
	got := r.Value()
	want := []string{"Angel", "Risingson", "Teardrop"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tracks, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("position %d: expected %q, got %q", i+1, w, got[i].Title)
		}
	}
}
