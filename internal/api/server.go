package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annelie/wax/internal/api/handler"
	"github.com/annelie/wax/internal/api/middleware"
	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/service"
	"github.com/annelie/wax/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	userService *service.UserService,
	artistService *service.ArtistService,
	releaseService *service.ReleaseService,
	trackService *service.TrackService,
	tagService *service.TagService,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	artistHandler := handler.NewArtistHandler(artistService)
	releaseHandler := handler.NewReleaseHandler(releaseService)
	trackHandler := handler.NewTrackHandler(trackService)
	tagHandler := handler.NewTagHandler(tagService)

	authMiddleware := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// Public routes
	router.POST("/auth/token", authHandler.Token)
	router.POST("/users", userHandler.SignUp)
	router.GET("/users/me", authMiddleware, userHandler.Me)

	// Artists
	artists := router.Group("/artists")
	{
		artists.GET("", artistHandler.ListArtists)
		artists.GET("/:id", artistHandler.GetArtist)
		artists.POST("", authMiddleware, artistHandler.CreateArtist)
		artists.PUT("/:id", authMiddleware, artistHandler.UpdateArtist)
		artists.DELETE("/:id", authMiddleware, adminOnly, artistHandler.DeleteArtist)
	}

	// Releases
	releases := router.Group("/releases")
	{
		releases.GET("", releaseHandler.ListReleases)
		releases.GET("/:id", releaseHandler.GetRelease)
		releases.POST("", authMiddleware, releaseHandler.CreateRelease)
		releases.PUT("/:id", authMiddleware, releaseHandler.UpdateRelease)
		releases.DELETE("/:id", authMiddleware, adminOnly, releaseHandler.DeleteRelease)
		releases.PUT("/:id/tags", authMiddleware, releaseHandler.SetReleaseTags)
		releases.GET("/:id/tracks", trackHandler.ListTracks)
		releases.POST("/:id/tracks", authMiddleware, trackHandler.AddTrack)
	}

	// Tracks
	tracks := router.Group("/tracks")
	tracks.Use(authMiddleware)
	{
		tracks.PUT("/:id", trackHandler.UpdateTrack)
		tracks.DELETE("/:id", trackHandler.DeleteTrack)
	}

	// Tags
	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.ListTags)
		tags.GET("/:slug", tagHandler.GetTag)
		tags.POST("", authMiddleware, tagHandler.CreateTag)
		tags.PUT("/:slug", authMiddleware, tagHandler.UpdateTag)
		tags.DELETE("/:slug", authMiddleware, adminOnly, tagHandler.DeleteTag)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	server := &Server{
		router: router,
		config: cfg,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
