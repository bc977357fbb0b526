package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"orchestrator/internal/pkg/config"
	"orchestrator/internal/pkg/dotenv"
	"orchestrator/internal/pkg/postgres"
	"orchestrator/pkg/logger"
	"orchestrator/pkg/logger/zap_adapter"
)

// Использование: migrate [up|down|status|redo|version|up-to N|down-to N], по умолчанию up.
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	if _, err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	positional, err := dotenv.ParseFlags(flag.CommandLine, os.Args[1:], "POSTGRES_PORT")
	if err != nil {
		mainLog.Error("flags", logger.NewField("error", err))
		return
	}

	command := "up"
	var args []string
	if len(positional) > 0 {
		command = positional[0]
		args = positional[1:]
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, appLogger, cfg)
	if err != nil {
		mainLog.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, appLogger, pool, command, args...); err != nil {
		mainLog.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		return
	}

	mainLog.Info("migration finished", logger.NewField("command", command))
}
