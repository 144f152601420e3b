package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"driver-earnings/internal/pkg/config"
	"driver-earnings/internal/pkg/dotenv"
	"driver-earnings/internal/pkg/postgres"
	"driver-earnings/migrations"
	"driver-earnings/pkg/logger"
	"driver-earnings/pkg/logger/zap_adapter"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// sqlPinger приводит *sql.DB к интерфейсу, который ждёт postgres.PingWithRetry.
type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if err := run(context.Background(), log, command, flag.Args()); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, command string, args []string) error {
	// миграциям нужна только база, остальной конфиг сервиса не проверяем
	cfg := config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", logger.NewField("error", err))
		}
	}()

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("db", cfg.DBName),
	)
	if err := postgres.PingWithRetry(ctx, dbLog, sqlPinger{db: db}); err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	var commandArgs []string
	if len(args) > 1 {
		commandArgs = args[1:]
	}

	dbLog.Info("running migrations", logger.NewField("command", command))
	if err := goose.RunContext(ctx, command, db, ".", commandArgs...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	dbLog.Info("migrations done", logger.NewField("command", command))
	return nil
}
