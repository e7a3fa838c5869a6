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

	"github.com/damoang/angple-forum/internal/config"
	"github.com/damoang/angple-forum/internal/domain"
	"github.com/damoang/angple-forum/internal/migration"
	"github.com/damoang/angple-forum/internal/repository"
	"github.com/damoang/angple-forum/internal/routes"
	"github.com/damoang/angple-forum/internal/service"
	pkgcache "github.com/damoang/angple-forum/pkg/cache"
	pkglogger "github.com/damoang/angple-forum/pkg/logger"
	pkgredis "github.com/damoang/angple-forum/pkg/redis"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Angple Forum API
// @version         1.0
// @description     Board and post listings with case-insensitive substring search
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 레코드 저장소
	var repo repository.RecordRepository
	db, err := initDB(cfg)
	switch {
	case err != nil:
		pkglogger.Warn("Failed to connect to database: %v (serving static lists)", err)
		repo = repository.NewStaticRecordRepository()
	case db == nil:
		pkglogger.Info("No database configured, serving static lists")
		repo = repository.NewStaticRecordRepository()
	default:
		pkglogger.Info("Connected to %s", cfg.Database.Driver)
		if err := migration.Run(db); err != nil {
			pkglogger.Warn("Migration warning: %v", err)
		}
		repo = repository.NewRecordRepository(db)
	}

	// Redis 연결
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(ctx,
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
		} else {
			defer redisClient.Close()
			cacheService = pkgcache.NewService(redisClient)
			if err := cacheService.InvalidateRecords(ctx, domain.KindBoard, domain.KindPost); err != nil {
				pkglogger.Warn("Cache invalidation failed: %v", err)
			}
			pkglogger.Info("Record cache initialized")
		}
	}

	listingService := service.NewListingService(repo, cacheService)

	router, err := routes.NewEngine(cfg, listingService, cacheService)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		pkglogger.Info("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	pkglogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		pkglogger.Error("Server forced to shutdown: %v", err)
	}
	pkglogger.Info("Server exited")
}

// initDB opens the configured record store. Returns nil, nil for driver "none".
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	var db *gorm.DB
	var err error
	switch cfg.Database.Driver {
	case "mysql":
		mysqlCfg, perr := mysqldriver.ParseDSN(cfg.Database.GetDSN())
		if perr != nil {
			return nil, fmt.Errorf("DSN 파싱 실패: %w", perr)
		}
		db, err = gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.Database.Path), gormCfg)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}
