package postgres_test

import (
	"net/url"
	"suitespot/config"
	"suitespot/infras/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "stage_"

	endpoint := config.PostgresEndpoint{
		Host:     "db",
		Port:     "5432",
		Username: "app",
		Password: "p@ss",
		Name:     "suitespot",
		SSLMode:  "disable",
	}

	t.Run("defaults the session timezone", func(t *testing.T) {
		assert.Equal(t, "postgres://app:p%40ss@db:5432/stage_suitespot?sslmode=disable&timezone=UTC", postgres.DSN(cfg, endpoint, nil))
	})

	t.Run("extra parameters", func(t *testing.T) {
		endpoint := endpoint
		endpoint.Timezone = "Asia/Jakarta"

		dsn := postgres.DSN(cfg, endpoint, url.Values{"x-migrations-table": {"schema_migrations"}})

		assert.Equal(t, "postgres://app:p%40ss@db:5432/stage_suitespot?sslmode=disable&timezone=Asia%2FJakarta&x-migrations-table=schema_migrations", dsn)
	})
}
