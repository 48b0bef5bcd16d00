package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annelie/wax/internal/core/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo catalog data",
	Long:  "Insert a small demo catalog (artists, releases, tracks, tags) for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		return seedCatalog(cmd.Context(), services)
	},
}

func seedCatalog(ctx context.Context, services *Services) error {
	tags := []struct{ slug, name string }{
		{"jazz", "Jazz"},
		{"electronic", "Electronic"},
		{"ambient", "Ambient"},
	}
	for _, t := range tags {
		if res := services.TagService.CreateTag(ctx, domain.NewTag(t.slug, t.name)); res.IsFailure() {
			return fmt.Errorf("failed to seed tag %s: %s", t.slug, res.Err().Error())
		}
	}

	artists := []struct {
		name    string
		country string
		tags    []string
	}{
		{"Miles Davis", "US", []string{"jazz"}},
		{"Aphex Twin", "GB", []string{"electronic", "ambient"}},
	}

	for _, a := range artists {
		artist := domain.NewArtist(a.name)
		country := a.country
		artist.Country = &country

		artistRes := services.ArtistService.CreateArtist(ctx, artist)
		if artistRes.IsFailure() {
			return fmt.Errorf("failed to seed artist %s: %s", a.name, artistRes.Err().Error())
		}

		release := domain.NewRelease(artistRes.Value().ID, a.name+" - Demo Sessions", "album")
		releaseRes := services.ReleaseService.CreateRelease(ctx, release)
		if releaseRes.IsFailure() {
			return fmt.Errorf("failed to seed release for %s: %s", a.name, releaseRes.Err().Error())
		}

		if res := services.ReleaseService.SetTags(ctx, releaseRes.Value().ID, a.tags); res.IsFailure() {
			return fmt.Errorf("failed to seed tags for %s: %s", a.name, res.Err().Error())
		}

		for pos := 1; pos <= 3; pos++ {
			track := domain.NewTrack(releaseRes.Value().ID, pos, fmt.Sprintf("Take %d", pos))
			duration := 180 + pos*30
			track.DurationSeconds = &duration
			if res := services.TrackService.AddTrack(ctx, track); res.IsFailure() {
				return fmt.Errorf("failed to seed track %d for %s: %s", pos, a.name, res.Err().Error())
			}
		}
	}

	fmt.Println("Demo catalog seeded")
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
