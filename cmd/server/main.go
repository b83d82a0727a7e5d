package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"tradescope/internal/auth"
	"tradescope/internal/config"
	cronrunner "tradescope/internal/cron"
	"tradescope/internal/db"
	"tradescope/internal/handler"
	"tradescope/internal/logger"
	gormrepository "tradescope/internal/repository/gorm"
	"tradescope/internal/service"
	"tradescope/internal/stream"

	_ "tradescope/docs"
)

func main() {
	cfgPath := os.Getenv("TS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("TS_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	var hub *stream.Hub
	if cfg.Stream.Enabled {
		hub = stream.NewHub(cfg.Stream, logger)
	}

	profileSvc := &service.ProfileService{Repo: store}
	accountSvc := &service.AccountService{Repo: store, Profiles: profileSvc, Events: hub}
	tradeSvc := &service.TradeService{Repo: store, Events: hub}
	statsSvc := &service.StatsService{Repo: store, Profiles: profileSvc}
	statementSvc := &service.StatementService{Repo: store, Profiles: profileSvc, Defaults: cfg.Statement}
	importSvc := &service.ImportService{Repo: store, Events: hub}
	snapshotSvc := &service.SnapshotService{Repo: store, Logger: logger}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(auth.Middleware(cfg.Auth))
	engine.Use(auth.AccessLogMiddleware(logger))

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	accountsHandler := &handler.AccountsHandler{Accounts: accountSvc}
	accountsHandler.Register(engine)
	tradesHandler := &handler.TradesHandler{Trades: tradeSvc}
	tradesHandler.Register(engine)
	dashboardHandler := &handler.DashboardHandler{Stats: statsSvc}
	dashboardHandler.Register(engine)
	statisticsHandler := &handler.StatisticsHandler{Stats: statsSvc}
	statisticsHandler.Register(engine)
	statementHandler := &handler.StatementHandler{Statements: statementSvc}
	statementHandler.Register(engine)
	playbookHandler := &handler.PlaybookHandler{Repo: store, Profiles: profileSvc}
	playbookHandler.Register(engine)
	backupHandler := &handler.BackupHandler{Imports: importSvc}
	backupHandler.Register(engine)
	profileHandler := &handler.ProfileHandler{Profiles: profileSvc}
	profileHandler.Register(engine)
	if hub != nil {
		streamHandler := &handler.StreamHandler{Hub: hub}
		streamHandler.Register(engine)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		if _, err := cronRunner.Add("equity_snapshot", cfg.Cron.EquitySnapshot, snapshotSvc.RunOnce); err != nil {
			logger.Warn("cron register equity snapshot failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
