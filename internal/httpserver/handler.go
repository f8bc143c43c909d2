package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ai-notes/internal/middleware"
)

const (
	environmentProduction = "production"
	apiPrefix             = "/api/v1"
)

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.appConfig)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.CORS())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.appConfig.CORS.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	api := srv.gin.Group(apiPrefix)

	if err := srv.setupNoteDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
