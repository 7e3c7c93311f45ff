package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/caconnectors/internal/auth/domain"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, discardLogger()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func requestAs(router *gin.Engine, principal *authDomain.Principal, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	if principal != nil {
		req = req.WithContext(WithPrincipal(req.Context(), principal))
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	router := newRateLimitedRouter(t, 10.0, 20)
	admin := &authDomain.Principal{Role: authDomain.RoleAdmin, Username: "admin"}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, requestAs(router, admin, "").Code)
	}
}

func TestRateLimitMiddleware_Returns429WithRetryAfterHeader(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 1)
	admin := &authDomain.Principal{Role: authDomain.RoleAdmin, Username: "admin"}

	assert.Equal(t, http.StatusOK, requestAs(router, admin, "").Code)

	w := requestAs(router, admin, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":4290`)
}

func TestRateLimitMiddleware_IndependentLimitsPerPrincipal(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 1)
	alice := &authDomain.Principal{Role: authDomain.RoleUser, Username: "alice", Realm: "realm1"}
	aliceOther := &authDomain.Principal{Role: authDomain.RoleUser, Username: "alice", Realm: "realm2"}

	assert.Equal(t, http.StatusOK, requestAs(router, alice, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestAs(router, alice, "").Code)
	assert.Equal(t, http.StatusOK, requestAs(router, aliceOther, "").Code)
}

func TestRateLimitMiddleware_AnonymousKeyedByIP(t *testing.T) {
	router := newRateLimitedRouter(t, 1.0, 1)

	assert.Equal(t, http.StatusOK, requestAs(router, authDomain.Anonymous(), "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestAs(router, authDomain.Anonymous(), "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, requestAs(router, authDomain.Anonymous(), "10.0.0.2:1234").Code)
}

func TestRateLimiterStore_EvictBefore(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	store.getLimiter("a")
	store.getLimiter("b")

	val, _ := store.limiters.Load("a")
	val.(*rateLimiterEntry).lastAccess = time.Now().Add(-2 * time.Hour)

	store.evictBefore(time.Now().Add(-time.Hour))

	_, okA := store.limiters.Load("a")
	_, okB := store.limiters.Load("b")
	assert.False(t, okA)
	assert.True(t, okB)
}
