package helpers

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"fintx/cache"
)

// NewTestRedisCache starts a miniredis server and returns a cache client
// bound to it. The server is returned as well so tests can advance its clock
// or shut it down.
func NewTestRedisCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c := cache.NewRedisCacheAddr(srv.Addr())

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, srv
}
