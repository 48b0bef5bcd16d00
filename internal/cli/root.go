package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/internal/infrastructure/sqlite"
	"github.com/annelie/wax/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wax",
	Short: "Wax - Music catalog and identity service",
	Long: `Wax is a music catalog service with user management.

It provides:
- Artist, release, track and tag catalog management
- Soft-deleted releases kept for archival lookups
- User sign-up with role-based access
- REST API with JWT authentication`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/wax/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	artistRepo := sqlite.NewArtistRepository(db)
	releaseRepo := sqlite.NewReleaseRepository(db)
	typeRepo := sqlite.NewReleaseTypeRepository(db)
	trackRepo := sqlite.NewTrackRepository(db)
	tagRepo := sqlite.NewTagRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey)
	userService := service.NewUserService(userRepo, authService)
	artistService := service.NewArtistService(artistRepo, releaseRepo)
	releaseService := service.NewReleaseService(releaseRepo, artistRepo, typeRepo, tagRepo)
	trackService := service.NewTrackService(trackRepo, releaseService)
	tagService := service.NewTagService(tagRepo, releaseRepo)

	return &Services{
		DB:             db,
		UserRepo:       userRepo,
		ArtistRepo:     artistRepo,
		ReleaseRepo:    releaseRepo,
		TagRepo:        tagRepo,
		AuthService:    authService,
		UserService:    userService,
		ArtistService:  artistService,
		ReleaseService: releaseService,
		TrackService:   trackService,
		TagService:     tagService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB             *sqlite.DB
	UserRepo       repository.UserRepository
	ArtistRepo     repository.ArtistRepository
	ReleaseRepo    repository.ReleaseRepository
	TagRepo        repository.TagRepository
	AuthService    *service.AuthService
	UserService    *service.UserService
	ArtistService  *service.ArtistService
	ReleaseService *service.ReleaseService
	TrackService   *service.TrackService
	TagService     *service.TagService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
