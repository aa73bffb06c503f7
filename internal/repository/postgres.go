package repository

import (
	"book_catalog_web/internal/model"
	"book_catalog_web/utils"
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *Postgres {
	return &Postgres{db}
}

func (r *Postgres) InsertRequestLog(ctx context.Context, requestLog model.RequestLog) error {
	op := "Postgres.InsertRequestLog"
	rqID := utils.GetRequestIDFromCtx(ctx)
	query := `INSERT INTO request_logs (request_id, method, path, status, latency_ms, created_at)
		VALUES (:request_id, :method, :path, :status, :latency_ms, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, requestLog)
	if err != nil {
		slog.Warn(
			"Failed to insert request log",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("path", requestLog.Path),
		)
		return err
	}

	return nil
}
