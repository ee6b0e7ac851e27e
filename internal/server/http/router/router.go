package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/L1nkStart/authsvc/internal/config"
	"github.com/L1nkStart/authsvc/internal/pkg/ratelimit"
	"github.com/L1nkStart/authsvc/internal/server/http/handlers"
	"github.com/L1nkStart/authsvc/internal/server/http/middleware"
)

// Setup wires handlers and middleware into a gin engine.
func Setup(
	facade handlers.AuthFacade,
	limiter *ratelimit.Limiter,
	pinger handlers.Pinger,
	cfg *config.Config,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecureHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.DecompressRequest())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(pinger)

	r.GET("/health", healthHandler.Check)

	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimit(limiter), authHandler.Register)
		auth.POST("/login", middleware.RateLimit(limiter), authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/profile", middleware.AuthRequired(facade), authHandler.Profile)
	}

	return r
}
