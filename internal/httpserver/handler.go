package httpserver

import (
	"context"

	"smart-reply-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, middleware.Config{
		JWTManager:         srv.jwtManager,
		RedisClient:        srv.redisClient,
		BlacklistKeyPrefix: srv.blacklistKeyPrefix,
	})

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Map routes (no prefix)
	r := srv.gin.Group("")
	if err := srv.setupSmartReplyDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupAssistantDomain(ctx, r); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.corsOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs (non-production only)
	if srv.environment != "production" {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
