package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/config"
	"github.com/BloggingApp/dailylight-service/internal/handler"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/BloggingApp/dailylight-service/internal/repository/memory"
	"github.com/BloggingApp/dailylight-service/internal/repository/mongorepo"
	"github.com/BloggingApp/dailylight-service/internal/repository/postgres"
	"github.com/BloggingApp/dailylight-service/internal/repository/redisrepo"
	"github.com/BloggingApp/dailylight-service/internal/server"
	"github.com/BloggingApp/dailylight-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := config.LoadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := config.InitConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	driver, err := config.Driver()
	if err != nil {
		logger.Sugar().Panicf("failed to select post store: %s", err.Error())
	}
	posts := repository.NewLazy(logger, storeOpener(driver, logger))
	logger.Sugar().Infof("Post store configured: %s", driver)

	var redisRepo *redisrepo.RedisRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: addr,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
		redisRepo = redisrepo.New(rdb)
	} else {
		logger.Warn("REDIS_ADDR is not set, verse lookups will not be cached")
	}

	repos := repository.New(posts, redisRepo)
	services := service.New(logger, repos, service.Options{
		VerseAPI:      viper.GetString("verse.api"),
		VerseCacheTTL: viper.GetDuration("verse.cache-ttl"),
	})

	gin.SetMode(gin.ReleaseMode)
	handlers := handler.New(services, logger)

	srv := server.New(config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	})
	go func() {
		if err := srv.Run(); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown http server: %s", err.Error())
	}
	if err := posts.Close(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to close post store: %s", err.Error())
	}
}

func storeOpener(driver string, logger *zap.Logger) repository.Opener {
	switch driver {
	case config.DriverMongo:
		cfg := config.MongoConfigFromEnv()
		return func(ctx context.Context) (repository.PostStore, error) {
			return mongorepo.Open(ctx, cfg, logger)
		}
	case config.DriverMemory:
		return func(ctx context.Context) (repository.PostStore, error) {
			return memory.NewPostRepo(), nil
		}
	default:
		cfg := config.DBConfigFromEnv()
		return func(ctx context.Context) (repository.PostStore, error) {
			return postgres.Open(ctx, cfg, logger)
		}
	}
}
