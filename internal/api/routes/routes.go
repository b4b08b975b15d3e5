package routes

import (
	"net/http"

	"match-rating-backend/internal/api/handlers"
	"match-rating-backend/internal/api/middleware"
	"match-rating-backend/internal/auth"
	"match-rating-backend/internal/config"
	"match-rating-backend/internal/logger"
	"match-rating-backend/internal/repository"
	"match-rating-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, validator)
	matchService := service.NewMatchService(matchRepo, playerRepo, validator)
	rosterService := service.NewRosterService(matchRepo, playerRepo)
	resultsService := service.NewResultsService(matchRepo, playerRepo, voteRepo)
	votingService := service.NewVotingService(matchRepo, playerRepo, voteRepo, resultsService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService)
	matchHandler := handlers.NewMatchHandler(matchService, rosterService, resultsService)
	ballotHandler := handlers.NewBallotHandler(votingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAdmin := adminGuard(cfg)

	v1 := router.Group("/api/v1")
	{
		// Player routes
		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.POST("", requireAdmin, playerHandler.CreatePlayer)
			players.DELETE("/:id", requireAdmin, playerHandler.DeletePlayer)
		}

		// Match routes
		matches := v1.Group("/matches")
		{
			matches.GET("", matchHandler.ListMatches)
			matches.POST("", requireAdmin, matchHandler.CreateMatch)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.DELETE("/:id", requireAdmin, matchHandler.DeleteMatch)

			matches.POST("/:id/roster", requireAdmin, matchHandler.AddToTeam)
			matches.DELETE("/:id/roster/:playerId", requireAdmin, matchHandler.RemoveFromTeam)

			matches.PUT("/:id/winner", requireAdmin, matchHandler.SetWinner)
			matches.DELETE("/:id/winner", requireAdmin, matchHandler.ClearWinner)

			matches.GET("/:id/results", matchHandler.GetMatchResults)
			matches.POST("/:id/ballots", ballotHandler.SubmitBallot)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router
}

// adminGuard returns the middleware protecting roster and match administration.
// With admin auth disabled every request passes; a misconfigured signer rejects
// every admin request instead of silently opening the routes.
func adminGuard(cfg *config.Config) gin.HandlerFunc {
	if !cfg.AdminAuthEnabled {
		return func(c *gin.Context) { c.Next() }
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		logger.New().WithError(err).Error("Admin authentication unavailable, admin routes will be rejected")
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "admin authentication is not configured",
			})
		}
	}

	return auth.NewAuthMiddleware(authService).RequireAdmin()
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
