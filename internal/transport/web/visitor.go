package web

import (
	"book_catalog_web/internal/transport/web/middleware"

	"github.com/gin-gonic/gin"
)

func getVisitorID(c *gin.Context) string {
	return c.GetString(middleware.VisitorKey)
}
