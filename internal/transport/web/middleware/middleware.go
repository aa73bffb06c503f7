package middleware

import (
	"book_catalog_web/internal/model"
	"book_catalog_web/utils"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "visitor_id"
	VisitorKey    = "visitorID"
	RequestHeader = "X-Request-ID"

	visitorCookieMaxAge = 30 * 24 * 60 * 60
	requestLogTimeout   = 2 * time.Second
)

type RequestLogRepo interface {
	InsertRequestLog(ctx context.Context, requestLog model.RequestLog) error
}

// RequestID puts a request id on the request context, reusing the
// X-Request-ID header when the client sent one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rqID := c.GetHeader(RequestHeader)
		if rqID == "" {
			rqID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.WithRequestID(c.Request.Context(), rqID))
		c.Header(RequestHeader, rqID)
		c.Next()
	}
}

func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(visitorID) != nil {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, visitorID, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info(
			"request handled",
			slog.String("rqID", utils.GetRequestIDFromCtx(c.Request.Context())),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// RequestLog stores every handled request through repo once the handler is
// done. Failures are only logged.
func RequestLog(repo RequestLogRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), requestLogTimeout)
		defer cancel()

		requestLog := model.RequestLog{
			RequestID: utils.GetRequestIDFromCtx(ctx),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			LatencyMs: time.Since(start).Milliseconds(),
			CreatedAt: start.UTC(),
		}

		if err := repo.InsertRequestLog(ctx, requestLog); err != nil {
			slog.Warn("request log not stored", slog.String("rqID", requestLog.RequestID), slog.String("err", err.Error()))
		}
	}
}
