package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	custommiddleware "catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"
	"catalog-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service, redisClient *redis.Client) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.IsDevelopment()))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger, cfg.IsDevelopment()))

	// Request logging mirrors the NODE_ENV gate: development only
	if cfg.IsDevelopment() {
		router.Use(custommiddleware.LoggingMiddleware(logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := db.Health(r.Context())
		if health["status"] != "up" {
			custommiddleware.RespondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		custommiddleware.RespondSuccess(w, http.StatusOK, "ok", health)
	})

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	subCategoryRepo := repository.NewSubCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo)
	subCategoryService := service.NewSubCategoryService(subCategoryRepo, categoryRepo)
	brandService := service.NewBrandService(brandRepo)
	productService := service.NewProductService(productRepo, categoryRepo, subCategoryRepo)

	// Initialize handlers
	categoryHandler := transport.NewCategoryHandler(categoryService, logger)
	subCategoryHandler := transport.NewSubCategoryHandler(subCategoryService, logger)
	brandHandler := transport.NewBrandHandler(brandService, logger)
	productHandler := transport.NewProductHandler(productService, logger)

	// Register routes under the configurable prefix
	router.Route(cfg.Server.APIPrefix, func(r chi.Router) {
		if redisClient != nil {
			r.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.Requests,
				Window:            time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute,
				KeyPrefix:         "ratelimit",
			}, logger))
		}

		categoryHandler.RegisterRoutes(r)
		subCategoryHandler.RegisterRoutes(r)
		brandHandler.RegisterRoutes(r)
		productHandler.RegisterRoutes(r)
	})

	// Unmatched routes produce the same envelope
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Can't find this route: %s", r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondError(w, http.StatusBadRequest, fmt.Sprintf("Can't find this route: %s", r.URL.Path))
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.db != nil {
		if err := s.db.Close(ctx); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
