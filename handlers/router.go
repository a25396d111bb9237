package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mvcipher/config"
	"mvcipher/logging"
)

// NewRouter wires middleware and the /api/v1 routes.
func NewRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.Middleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", logging.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Cipher-Mode", "X-Cipher-Keyword-Length", "X-Cipher-Lines", "X-Cipher-Letters", logging.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	cipherHandler := NewCipherHandler(cfg, logger)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.EncryptFile)
			cipher.POST("/decrypt", cipherHandler.DecryptFile)
			cipher.POST("/text", cipherHandler.TransformText)
		}
	}

	return router
}
