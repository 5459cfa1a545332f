package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	restctx "github.com/dtroode/account-service/internal/api/rest/context"
	"github.com/dtroode/account-service/internal/api/rest/router"
	restServer "github.com/dtroode/account-service/internal/api/rest/server"
	"github.com/dtroode/account-service/internal/config"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
	"github.com/dtroode/account-service/internal/password"
	"github.com/dtroode/account-service/internal/repository/postgres"
	"github.com/dtroode/account-service/internal/server"
	"github.com/dtroode/account-service/internal/service"
	"github.com/dtroode/account-service/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	kdf := password.NewKDFParams(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	hasher := password.NewPool(password.NewArgon2(kdf), cfg.KDF.Concurrency)

	gate := service.NewGate(tokenManager, userRepo, logger)
	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, hasher, logger)
	ctxMgr := restctx.NewManager()

	httpServer := registerHTTPServer(logger, cfg.HTTP, authService, userService, gate, ctxMgr)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	cfg config.HTTP,
	authService *service.Auth,
	userService *service.User,
	gate *service.Gate,
	ctxMgr model.ContextManager,
) *restServer.HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	r := router.New(authService, userService, gate, ctxMgr, logger, router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RequestTimeout: cfg.RequestTimeout,
	})

	return restServer.NewHTTPServer(r.Register(), cfg.Address)
}
