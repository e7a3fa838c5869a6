package handler

import (
	"context"
	"net/http"
	"time"

	pkgcache "github.com/damoang/angple-forum/pkg/cache"
	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Cache states reported by /health
const (
	CacheDisabled    = "disabled"
	CacheUp          = "up"
	CacheUnreachable = "unreachable"
)

// HealthHandler reports liveness and the state of the record cache
type HealthHandler struct {
	cache pkgcache.Service
}

// NewHealthHandler creates a HealthHandler. cache may be nil.
func NewHealthHandler(cache pkgcache.Service) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Check - 헬스 체크 (GET /health). An unreachable cache degrades the
// status but keeps 200: listings fall back to the record store.
func (h *HealthHandler) Check(c *gin.Context) {
	cacheState := h.cacheState(c.Request.Context())

	status := "ok"
	if cacheState == CacheUnreachable {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "angple-forum",
		"cache":   cacheState,
		"time":    time.Now().Unix(),
	})
}

func (h *HealthHandler) cacheState(ctx context.Context) string {
	if h.cache == nil || !h.cache.IsAvailable() {
		return CacheDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		return CacheUnreachable
	}
	return CacheUp
}
