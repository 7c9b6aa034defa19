package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"doctors/internal/i18n"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtx    = "request_id"
	localeCtx       = "locale"
)

func (h *Handler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDCtx, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("request_id", c.GetString(requestIDCtx)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		)

		if status >= 500 {
			logger.Error("server error")
		} else if status >= 400 {
			logger.Warn("client error")
		} else {
			logger.Info("request processed")
		}
	}
}

func (h *Handler) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		h.metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), start)
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("request error",
				zap.String("request_id", c.GetString(requestIDCtx)),
				zap.Error(err),
			)
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Language", requestIDHeader},
		MaxAge:        24 * time.Hour,
	}

	origins := h.config.CORS.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

// localeMiddleware resolves the request locale once: the lang query parameter
// wins over Accept-Language, and anything unsupported maps to the default.
func (h *Handler) localeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := h.resolver.Resolve(c.Query(i18n.LangParam), c.GetHeader("Accept-Language"))

		c.Set(localeCtx, tag)
		c.Header("Content-Language", tag.String())
		c.Header("Vary", "Accept-Language")

		c.Next()
	}
}

func getLocale(c *gin.Context, fallback language.Tag) language.Tag {
	value, exists := c.Get(localeCtx)
	if !exists {
		return fallback
	}

	tag, ok := value.(language.Tag)
	if !ok {
		return fallback
	}

	return tag
}
