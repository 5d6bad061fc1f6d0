package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/atelier-ai/atelier-server/internal/api/http/httpctx"
	"github.com/atelier-ai/atelier-server/internal/api/http/router"
	httpServer "github.com/atelier-ai/atelier-server/internal/api/http/server"
	"github.com/atelier-ai/atelier-server/internal/config"
	"github.com/atelier-ai/atelier-server/internal/generation"
	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/repository/file"
	"github.com/atelier-ai/atelier-server/internal/repository/postgres"
	"github.com/atelier-ai/atelier-server/internal/server"
	"github.com/atelier-ai/atelier-server/internal/service"
	storage "github.com/atelier-ai/atelier-server/internal/storage/minio"
	"github.com/atelier-ai/atelier-server/internal/token"
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
	logger := logger.New(cfg.LogLevel)

	userStore, hierarchyStore, settingsStore, closeStores := newStores(ctx, cfg, logger)
	defer closeStores()

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	storageClient := newStorageClient(ctx, cfg, logger)

	generationClient := generation.NewClient(generation.Config{
		BaseURL:        cfg.Generation.BaseURL,
		APIKey:         cfg.Generation.APIKey,
		ImageModel:     cfg.Generation.ImageModel,
		ReasoningModel: cfg.Generation.ReasoningModel,
		ImageSize:      cfg.Generation.ImageSize,
		Timeout:        time.Duration(cfg.Generation.TimeoutSec) * time.Second,
	}, logger)

	authService := service.NewAuth(userStore, tokenManager, logger)
	hierarchyService := service.NewHierarchy(hierarchyStore, userStore, storageClient, logger)
	settingsService := service.NewSettings(settingsStore, userStore, logger)
	designService := service.NewDesign(hierarchyService, generationClient, logger)

	r := router.New(authService, hierarchyService, settingsService, designService, tokenManager, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStores builds the persistence layer for the configured storage driver.
func newStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.UserStore, model.HierarchyStore, model.SettingsStore, func()) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		return postgres.NewUserRepository(db),
			postgres.NewHierarchyRepository(db),
			postgres.NewSettingsRepository(db),
			func() { _ = db.Close() }
	case "file":
		return file.NewUserRepository(cfg.File.Dir),
			file.NewHierarchyRepository(cfg.File.Dir),
			file.NewSettingsRepository(cfg.File.Dir),
			func() {}
	default:
		logger.Fatal("unknown storage driver", "driver", cfg.StorageDriver)
		return nil, nil, nil, nil
	}
}

// newStorageClient builds the object storage client for reference images.
// With no endpoint configured, images stay inline in the hierarchy documents.
func newStorageClient(ctx context.Context, cfg *config.Config, logger *logger.Logger) model.Storage {
	if cfg.Storage.Endpoint == "" {
		return nil
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}

	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	return storageClient
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
