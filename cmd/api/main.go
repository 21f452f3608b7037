package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
	httphandlers "github.com/cofflyze/cofflyze-api/internal/handlers/http"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/config"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/i18n"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/logging"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/metrics"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/persistence/sqlstore"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/storage"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

//	@title			Cofflyze API
//	@version		1.0
//	@description	Usuários, histórico de diagnósticos e artigos do aplicativo Cofflyze.
//	@BasePath		/
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run inicializa as dependências e serve até receber SIGINT/SIGTERM.
// Os defers liberam o que já foi aberto mesmo quando a inicialização falha.
func run() error {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting cofflyze api",
		"env", cfg.Env,
		"db_driver", cfg.Database.Driver,
		"storage_driver", cfg.Storage.Driver,
	)

	// Conectar ao banco de dados
	db, err := sqlstore.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := sqlstore.Close(db); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	// O sqlite local não tem migrações externas
	if cfg.Database.Driver == config.DriverSQLite {
		if err := sqlstore.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	objectStorage, err := storage.New(context.Background(), &cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	i18nService, err := loadI18n(cfg.I18n, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	location, err := valueobjects.LoadTimeZone(cfg.History.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load history time zone %q: %w", cfg.History.TimeZone, err)
	}

	// Inicializar repositories
	userRepo := sqlstore.NewUserRepository(db)
	historyRepo := sqlstore.NewHistoryRepository(db)
	articleRepo := sqlstore.NewArticleRepository(db)
	uow := sqlstore.NewUnitOfWork(db)
	clock := ports.SystemClock{}

	// Inicializar services
	userService := services.NewUserService(userRepo, objectStorage, uow, logger, clock, cfg.Upload.MaxBytes)
	historyService, err := services.NewHistoryService(historyRepo, logger, clock, location)
	if err != nil {
		return fmt.Errorf("failed to initialize history service: %w", err)
	}
	articleService := services.NewArticleService(articleRepo, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:                cfg.Env,
		BaseURL:            cfg.Server.BaseURL,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxMultipartMemory: cfg.Upload.MaxBytes,
		Logger:             logger,
		I18n:               i18nService,
		Gatherer:           prometheus.DefaultGatherer,
		HealthCheck:        sqlDB.PingContext,
		Users:              httphandlers.NewUserHandler(userService, logger),
		History:            httphandlers.NewHistoryHandler(historyService, logger),
		Articles:           httphandlers.NewArticleHandler(articleService, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
	return nil
}

// loadI18n usa o diretório configurado e cai para as traduções embutidas
func loadI18n(cfg config.I18nConfig, logger ports.Logger) (*i18n.Service, error) {
	if cfg.LocalesDir != "" {
		svc, err := i18n.NewService(cfg.LocalesDir, cfg.DefaultLanguage)
		if err == nil {
			return svc, nil
		}
		logger.Warn("failed to load locales dir, using embedded translations",
			"dir", cfg.LocalesDir,
			"error", err,
		)
	}

	return i18n.NewEmbeddedService(cfg.DefaultLanguage)
}
