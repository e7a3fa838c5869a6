package middleware

import (
	"time"

	"github.com/damoang/angple-forum/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const loggerKey = "forum.logger"

// RequestLogger tags each request with an id, stores a logger carrying that
// id on the context and writes one access line after the handler ran.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		c.Header(RequestIDHeader, requestID)

		reqLog := logger.WithRequestID(requestID)
		c.Set(loggerKey, &reqLog)

		c.Next()

		status := c.Writer.Status()
		reqLog.WithLevel(accessLevel(status)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", routeLabel(c.FullPath())).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("body_size", c.Writer.Size()).
			Msg("request")
	}
}

// Logger returns the request-scoped logger installed by RequestLogger, or
// the global logger outside of it.
func Logger(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*zerolog.Logger); ok {
			return l
		}
	}
	return logger.GetLogger()
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
