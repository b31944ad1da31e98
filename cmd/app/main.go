package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jnbreid/todo-backend/internal/auth"
	"github.com/jnbreid/todo-backend/internal/config"
	"github.com/jnbreid/todo-backend/internal/db"
	httpServer "github.com/jnbreid/todo-backend/internal/http"
	"github.com/jnbreid/todo-backend/internal/http/handlers"
	"github.com/jnbreid/todo-backend/internal/http/middleware"
	"github.com/jnbreid/todo-backend/internal/logger"
	"github.com/jnbreid/todo-backend/internal/repository"
	"github.com/jnbreid/todo-backend/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	tasks := repository.NewTaskRepository(pool)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	h := handlers.NewHandler(
		service.NewUserService(users, hasher, codec),
		service.NewTaskService(tasks),
	)

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.Default()
	httpServer.RegisterRoutes(r, h,
		middleware.Authenticate(users, codec),
		middleware.AuthRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
