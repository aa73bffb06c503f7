package config

import (
	"log"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTP     HTTP
	Catalog  Catalog
	Grid     Grid
	Postgres Postgres
	Redis    Redis
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestLogging  bool          `env:"HTTP_REQUEST_LOGGING" envDefault:"true"`
}

// Catalog describes the remote book listing API.
type Catalog struct {
	BaseUrl string        `env:"CATALOG_BASE_URL"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"15s"`
}

type Grid struct {
	PageSize         int           `env:"GRID_PAGE_SIZE" envDefault:"18"`
	PlaceholderCount int           `env:"GRID_PLACEHOLDER_COUNT" envDefault:"18"`
	TotalPages       int           `env:"GRID_TOTAL_PAGES" envDefault:"99"`
	CacheExpiration  time.Duration `env:"GRID_CACHE_EXPIRATION" envDefault:"5m"`
}

type Postgres struct {
	Host            string `env:"PG_HOST" envDefault:"localhost"`
	Port            int    `env:"PG_PORT" envDefault:"5432"`
	DbName          string `env:"PG_DB_NAME" envDefault:"book_catalog"`
	Password        string `env:"PG_PASSWORD" envDefault:""`
	User            string `env:"PG_USER" envDefault:"postgres"`
	SslMode         string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxOpenConns    int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime int    `env:"PG_CONN_MAX_LIFETIME" envDefault:"300"`
	MaxIdleConns    int    `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime int    `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"60"`
	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"file://migrations"`
}

type Redis struct {
	Host              string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port              int           `env:"REDIS_PORT" envDefault:"6379"`
	Password          string        `env:"REDIS_PASSWORD" envDefault:""`
	DB                int           `env:"REDIS_DB" envDefault:"0"`
	SessionExpiration time.Duration `env:"REDIS_SESSION_EXPIRATION" envDefault:"2h"`
	ConnectTimeout    time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"5s"`
}

const redacted = "***"

// LogValue hides credentials when the config is logged.
func (c Config) LogValue() slog.Value {
	type plain Config
	p := plain(c)
	if p.Postgres.Password != "" {
		p.Postgres.Password = redacted
	}
	if p.Redis.Password != "" {
		p.Redis.Password = redacted
	}
	return slog.AnyValue(p)
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
