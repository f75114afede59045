package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"suitespot/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
	defaultSessionTimezone    = "UTC"
)

// Connection pairs the primary used for writes and locks with the replica used for plain reads.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", DSN(config, config.DB.Postgres.Read, nil), config),
		Write: connect("write", DSN(config, config.DB.Postgres.Write, nil), config),
	}
}

// DSN builds a postgres URL for endpoint. The session timezone defaults to UTC so
// DATE parameters are never shifted; extra is appended to the query string.
func DSN(config *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	timezone := endpoint.Timezone
	if timezone == "" {
		timezone = defaultSessionTimezone
	}

	query.Set("timezone", timezone)

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     config.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries up to DB_POSTGRES_MAX_RETRY times before giving up.
func connect(name, dsn string, config *config.Config) *sqlx.DB {
	attempts := max(config.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			log.Info().Str("name", name).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	log.Fatal().Str("name", name).Msg("Giving up connecting to database")

	return nil
}
