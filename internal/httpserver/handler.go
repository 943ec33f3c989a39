package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mediasearch-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, middleware.CookieConfig{
		Name: srv.config.Cookie.Name,
	})

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	ctx := context.Background()
	if err := srv.setupCoreDomains(ctx); err != nil {
		return err
	}

	root := srv.gin.Group("")
	if err := srv.setupSearchDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupExportDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupSavedSearchDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupQuotaDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
