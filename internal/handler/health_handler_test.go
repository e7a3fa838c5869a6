package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	pkgcache "github.com/damoang/angple-forum/pkg/cache"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkHealth(t *testing.T, cache pkgcache.Service) map[string]interface{} {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(cache).Check)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth_NoCache(t *testing.T) {
	body := checkHealth(t, nil)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, CacheDisabled, body["cache"])

	body = checkHealth(t, pkgcache.NewService(nil))
	assert.Equal(t, CacheDisabled, body["cache"])
}

func TestHealth_CacheUpAndDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := pkgcache.NewService(client)

	body := checkHealth(t, cache)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, CacheUp, body["cache"])

	mr.Close()
	body = checkHealth(t, cache)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, CacheUnreachable, body["cache"])
}
