package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cookifyai/backend/config"
	"github.com/cookifyai/backend/internal/api"
	"github.com/cookifyai/backend/internal/router"
	"github.com/cookifyai/backend/internal/service"
)

// Server wires the services to the HTTP surface and owns the listener.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New builds the full service graph from configuration and returns a
// server ready to start.
func New(cfg *config.Config) (*Server, error) {
	llmService, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM service: %w", err)
	}

	searchService, err := service.NewSearchService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("[Server] S3 unavailable, generated images will use upstream URLs: %v", err)
		s3Config = nil
	}

	imageService, err := service.NewImageService(cfg, s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %w", err)
	}

	detectionService := service.NewDetectionService(llmService, cfg.DetectorStrategy)
	mealPlanService := service.NewMealPlanService(llmService)

	var favorites service.FavoritesStore = service.NewMemoryFavorites()
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisFavorites, err := service.NewRedisFavorites(cfg)
		if err != nil {
			log.Printf("[Server] Redis unavailable, favorites will not persist: %v", err)
		} else {
			favorites = redisFavorites
		}
	}

	engine := router.SetupRouter(
		api.NewRecipeHandler(searchService, favorites),
		api.NewLLMHandler(llmService, llmService, llmService, searchService),
		api.NewMealPlanHandler(mealPlanService),
		api.NewDetectHandler(detectionService),
		api.NewImageHandler(imageService),
	)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start runs the HTTP listener until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
