package postgres_test

import (
	"testing"

	"company-ai/pkg/config"
	"company-ai/pkg/postgres"

	"github.com/m-mizutani/gt"
)

func TestDSN(t *testing.T) {
	dsn := postgres.DSN(&config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "company_ai",
		SSLMode:  "disable",
	})
	gt.Value(t, dsn).Equal("host=db port=5432 user=app password=secret dbname=company_ai sslmode=disable")
}
