package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewDisabledWithoutAddr(t *testing.T) {
	c := New("", "", 0, zerolog.Nop())
	assert.Nil(t, c)
	assert.False(t, c.Enabled())
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest int
	assert.False(t, c.GetJSON(ctx, NSOrders, "k", &dest))
	c.SetJSON(ctx, NSOrders, "k", 1, time.Minute)
	c.Invalidate(ctx, NSOrders)
	assert.Zero(t, c.ClearNamespace(ctx, NSOrders))
	assert.Zero(t, c.ClearAll(ctx))
	assert.NoError(t, c.Ping(ctx))

	s := c.Stats(ctx)
	assert.False(t, s.Enabled)
	assert.Zero(t, s.TotalKeys)
}

func TestKeyLayout(t *testing.T) {
	c := &Cache{}
	assert.Equal(t, "zomato-cache:orders:list:1", c.key(NSOrders, "list:1"))
}
