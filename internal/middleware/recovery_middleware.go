package middleware

import (
	"net/http"

	"community-board/internal/transport/httpdto"
	"community-board/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a panic into a generic 500 so no internals leak.
func RecoveryMiddleware(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if l != nil {
			l.WithContext(c.Request.Context()).Errorf("panic recovered: %v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewErrorResponse(httpdto.MsgServerError))
	})
}
