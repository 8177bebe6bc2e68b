package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"taskforce/internal/config"
	"taskforce/internal/middleware"
	"taskforce/internal/modules/admin"
	"taskforce/internal/modules/auth"
	"taskforce/internal/modules/site"
	jwtsvc "taskforce/internal/pkg/jwt"
	"taskforce/internal/pkg/logger"
	"taskforce/internal/repository"
	"taskforce/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.Init(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.AdminPasswordHash == "" {
		zap.S().Warn("ADMIN_PASSWORD_HASH is not set, falling back to the plaintext ADMIN_PASSWORD")
	}

	store, err := storage.Open(cfg.StoreBackend, cfg.DataPath)
	if err != nil {
		zap.S().Fatalw("failed to open store", "backend", cfg.StoreBackend, "error", err)
	}
	defer func() { _ = store.Close() }()

	content := repository.New(store)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authService := auth.NewService(content, j, cfg.AdminPassword, cfg.AdminPasswordHash)
	authHandler := auth.NewHandler(authService)

	siteService := site.NewService(content, cfg.FeaturedLimit)
	siteHandler := site.NewHandler(siteService)

	adminService := admin.NewService(content)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		siteHandler.RegisterRoutes(v1)

		// admin, gated on the session token
		protected := v1.Group("/admin")
		protected.Use(middleware.AdminAuth(j))
		{
			adminHandler.RegisterRoutes(protected)
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	zap.S().Infow("listening", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
