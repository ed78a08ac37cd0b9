package controllers

import (
	"backend/pkg/cache"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
)

// CacheController exposes operational cache endpoints: stats and
// manual clearing. Safe with a disabled (nil) cache.
type CacheController struct {
	Cache *cache.Cache
}

func NewCacheController(c *cache.Cache) *CacheController {
	return &CacheController{Cache: c}
}

// GET /cache/stats
func (cc *CacheController) Stats(c *gin.Context) {
	resp.OK(c, cc.Cache.Stats(c.Request.Context()))
}

// DELETE /cache
func (cc *CacheController) ClearAll(c *gin.Context) {
	deleted := cc.Cache.ClearAll(c.Request.Context())
	resp.OK(c, gin.H{"deleted": deleted})
}

// DELETE /cache/:namespace
func (cc *CacheController) ClearNamespace(c *gin.Context) {
	ns := c.Param("namespace")
	deleted := cc.Cache.ClearNamespace(c.Request.Context(), ns)
	resp.OK(c, gin.H{"namespace": ns, "deleted": deleted})
}
