package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/cache"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/database"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/events"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/adapters/scoring"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/api/middleware"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/application/services"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/providers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/repositories"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/generated"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/loaders"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/graphql/resolvers"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/postgres"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/clients/redis"
	"github.com/Prism-Clinical/prism-graphql-sub006/internal/infrastructure/observability"
	"github.com/Prism-Clinical/prism-graphql-sub006/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize structured logging
	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-graphql", env)

	log.Info().
		Str("service", cfg.OTEL.ServiceName+"-graphql").
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", env).
		Msg("Starting GraphQL Server")

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName+"-graphql",
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized successfully")
	}

	// Initialize adapters
	basePathwayAdapter := database.NewPathwayAdapter(pgClient)

	// Wrap pathway adapter with caching for read performance optimization
	var pathwayAdapter repositories.PathwayRepository
	var eventBus providers.EventBus
	if redisClient != nil {
		domainCacheProvider := cache.NewRedisAdapter(redisClient)
		pathwayAdapter = database.NewCachedPathwayAdapter(basePathwayAdapter, domainCacheProvider)
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("GraphQL: Pathway adapter wrapped with caching layer")

		// Cross-instance invalidation: drop cached entries when another
		// instance publishes a pathway change
		invalidator := database.NewCacheInvalidator(eventBus, domainCacheProvider)
		if err := invalidator.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to start cache invalidation subscriber")
		} else {
			log.Info().Msg("GraphQL: Cache invalidation subscriber started")
		}
	} else {
		pathwayAdapter = basePathwayAdapter
		log.Warn().Msg("GraphQL: Pathway adapter running without cache (Redis unavailable)")
	}

	nodeAdapter := database.NewPathwayNodeAdapter(pgClient)
	instanceAdapter := database.NewInstanceAdapter(pgClient)
	selectionAdapter := database.NewSelectionAdapter(pgClient)
	outcomeAdapter := database.NewOutcomeAdapter(pgClient)

	// Initialize the scoring provider (HTTP scorer or mock fallback)
	scoringProvider := scoring.NewScoringProvider(scoring.ProviderConfig{
		Provider:       cfg.Scorer.Provider,
		BaseURL:        cfg.Scorer.BaseURL,
		TimeoutSeconds: cfg.Scorer.TimeoutSeconds,
	}, metrics)

	// Initialize application services
	pathwayService := services.NewPathwayService(pathwayAdapter, nodeAdapter, instanceAdapter, selectionAdapter, eventBus)
	treeService := services.NewDecisionTreeService(pathwayAdapter, nodeAdapter, scoringProvider, cfg.Tree.MaxDepth)
	editorService := services.NewTreeEditorService(pathwayAdapter, nodeAdapter, eventBus, cfg.Tree.MaxDepth)
	instanceService := services.NewInstanceService(pathwayAdapter, nodeAdapter, instanceAdapter, selectionAdapter)
	recommendationService := services.NewRecommendationService(pathwayAdapter, scoringProvider)
	outcomeService := services.NewOutcomeService(nodeAdapter, outcomeAdapter)

	// Initialize GraphQL resolver with dependencies
	resolver := resolvers.NewResolver(
		pathwayService,
		treeService,
		editorService,
		instanceService,
		recommendationService,
		outcomeService,
		nodeAdapter,
		metrics,
	)

	// Create GraphQL server
	srv := handler.New(generated.NewExecutableSchema(generated.Config{
		Resolvers: resolver,
	}))

	// Configure transports
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.AddTransport(transport.MultipartForm{})

	// Set up Query Cache (LRU)
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	// Enable Introspection (disable in production if needed)
	srv.Use(extension.Introspection{})

	// Set up HTTP routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"graphql"}`))
	})

	// Create DataLoader middleware
	loaderMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ldrs := loaders.NewLoaders(pathwayAdapter, nodeAdapter)
			ctx := loaders.WithLoaders(r.Context(), ldrs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	// Apply middleware: Compression -> Observability -> Logging -> CORS -> DataLoader
	httpHandler := middleware.Compression(
		middleware.ObservabilityMiddleware(metrics)(
			middleware.LoggingMiddleware(
				middleware.CORSMiddleware(
					loaderMiddleware(srv),
				),
			),
		),
	)

	// GraphQL endpoint
	mux.Handle("/graphql", httpHandler)

	// Playground endpoint (dev only)
	if env != "production" {
		mux.Handle("/playground", playground.Handler("GraphQL Playground", "/graphql"))
		log.Info().Msgf("GraphQL Playground available at http://localhost:%d/playground", cfg.Server.Port)
	}

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", serverAddr).Msg("GraphQL server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("GraphQL server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("GraphQL server stopped")
}
