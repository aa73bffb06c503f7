package model

import "time"

type RequestLog struct {
	RequestID string    `db:"request_id"`
	Method    string    `db:"method"`
	Path      string    `db:"path"`
	Status    int       `db:"status"`
	LatencyMs int64     `db:"latency_ms"`
	CreatedAt time.Time `db:"created_at"`
}
