package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
)

const (
	// RequestIDHeader é propagado do cliente ou gerado aqui
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestLogger registra uma linha por requisição com o id de correlação
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		args := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request failed", args...)
		case status >= 400:
			logger.Warn("request rejected", args...)
		default:
			logger.Info("request handled", args...)
		}
	}
}
