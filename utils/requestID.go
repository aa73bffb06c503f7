package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

func CreateCtxWithRqID(parent context.Context) context.Context {
	return WithRequestID(parent, uuid.NewString())
}

func WithRequestID(parent context.Context, rqID string) context.Context {
	return context.WithValue(parent, requestIDKey, rqID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
