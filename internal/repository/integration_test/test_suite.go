package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"driver-earnings/internal/pkg/config"
	"driver-earnings/internal/pkg/postgres"
	"driver-earnings/migrations"
	"driver-earnings/pkg/logger/zap_adapter"
	"driver-earnings/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		connPool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			panic(err)
		}

		db := stdlib.OpenDBFromPool(connPool)
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("failed to close migration connection: %v", err)
			}
		}()

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatalf("failed to set goose dialect: %v", err)
		}
		if err := goose.UpContext(ctx, db, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE deliveries, shifts, connections, profiles CASCADE;
	`)
	require.NoError(t, err)
}

// Fixtures - водитель, ресторан и связь между ними, общие для тестов репозиториев.
const Fixtures = `
	INSERT INTO profiles (id, name, role, postcode, hourly_rate, mileage_rate, local_rate)
	VALUES
		('8a6e0804-2bd0-4672-b79d-d97027f9071a', 'Test Driver', 'driver', '', 12, NULL, NULL),
		('0c6d4b1e-5d7e-4a3a-9a53-0b0e1b3b7f11', 'Test Restaurant', 'restaurant', 'NW1 6XE', NULL, NULL, NULL);

	INSERT INTO connections (id, driver_id, restaurant_id, status, hourly_rate, mileage_rate, local_rate, subscription_end)
	VALUES
		('3f1c2b7e-9d1e-4a55-8d6f-2b9f0b6f2c01', '8a6e0804-2bd0-4672-b79d-d97027f9071a', '0c6d4b1e-5d7e-4a3a-9a53-0b0e1b3b7f11',
		 'accepted', 0, 0.9, 3.5, '2030-01-01 00:00:00+00');

	UPDATE profiles SET active_connection_id = '3f1c2b7e-9d1e-4a55-8d6f-2b9f0b6f2c01'
	WHERE id = '8a6e0804-2bd0-4672-b79d-d97027f9071a';
`
