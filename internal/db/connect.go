package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jnbreid/todo-backend/internal/logger"
)

// Connect opens a pgx pool against dsn and verifies it with a ping.
// Startup without a reachable database is pointless, so failure is fatal.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
