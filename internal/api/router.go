package api

import (
	"context"
	"time"

	aiHandler "recipe-recommender/internal/api/handlers/ai"
	favoritesHandler "recipe-recommender/internal/api/handlers/favorites"
	"recipe-recommender/internal/api/handlers/health"
	"recipe-recommender/internal/api/middleware"
	"recipe-recommender/internal/core/ai/cache"
	"recipe-recommender/internal/core/ai/groq"
	favoritesService "recipe-recommender/internal/core/favorites"
	"recipe-recommender/internal/core/recipe"
	"recipe-recommender/internal/core/translate"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Per-request timeout covering the upstream completion call.
	timeoutDuration = 120 * time.Second
	// Request body size limit (1MB); recipe payloads are small.
	maxBodySize = 1 << 20
)

// SetupRouter assembles the gin engine: middleware, stores, services
// and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("groq_configured", cfg.Groq.APIKey != ""),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// Two deliberately asymmetric stores: recipe results expire after
	// the configured TTL, translations never do.
	recipeCache := cache.New(cfg.Cache.TTL)
	translationCache := cache.New(0)

	client := groq.NewClient(cfg)
	suggestionSvc := recipe.NewSuggestionService(client, recipeCache)
	detailSvc := recipe.NewDetailService(client, recipeCache)
	translateSvc := translate.NewService(client, translationCache)
	favoritesSvc := favoritesService.NewService(db)

	aiH := aiHandler.NewHandler(suggestionSvc, detailSvc, translateSvc)
	favoritesH := favoritesHandler.NewHandler(favoritesSvc)

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck(db))
	router.GET("/live", health.LivenessCheck)

	aiGroup := router.Group("/ai")
	if cfg.RateLimit.Enabled {
		aiGroup.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		aiGroup.POST("/suggest-recipes", aiH.SuggestRecipes)
		aiGroup.POST("/recipe-details", aiH.RecipeDetails)
		aiGroup.POST("/translate", aiH.Translate)
	}

	favoritesGroup := router.Group("/favorites")
	{
		favoritesGroup.GET("", favoritesH.List)
		favoritesGroup.POST("", favoritesH.Add)
		favoritesGroup.DELETE("/:id", favoritesH.Remove)
	}

	common.LogInfo("router setup completed",
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
