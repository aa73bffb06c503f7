package postgres

import (
	"book_catalog_web/config"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func dsn(scheme string, cfg *config.Config) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(cfg.Postgres.User, cfg.Postgres.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Postgres.Host, cfg.Postgres.Port),
		Path:     cfg.Postgres.DbName,
		RawQuery: "sslmode=" + cfg.Postgres.SslMode,
	}
	return u.String()
}

func NewPostgresClient(cfg *config.Config) *sqlx.DB {
	db, err := sqlx.Open("pgx", dsn("postgres", cfg))
	if err != nil {
		slog.Error("Failed to open postgres connection", slog.String("err", err.Error()))
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		slog.Error("Failed to ping postgres", slog.String("err", err.Error()))
		panic(err)
	}
	slog.Info("Postgres connected")

	return db
}

// MustMigrate applies every pending migration from cfg.Postgres.MigrationsPath.
func MustMigrate(cfg *config.Config) {
	m, err := migrate.New(cfg.Postgres.MigrationsPath, dsn("pgx5", cfg))
	if err != nil {
		slog.Error("Failed to init migrations", slog.String("err", err.Error()))
		panic(err)
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("Failed to apply migrations", slog.String("err", err.Error()))
		panic(err)
	}

	version, dirty, _ := m.Version()
	slog.Info("Migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
