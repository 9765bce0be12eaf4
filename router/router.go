package router

import (
	"net/http"

	"github.com/mapyourmemory/memorymap/handler"
	"github.com/mapyourmemory/memorymap/pkg/metrics"
	ginmetrics "github.com/mapyourmemory/memorymap/pkg/metrics/gin"

	"github.com/gin-gonic/gin"
)

// StaticUploads describes a locally served upload directory; nil when an
// object store handles retrieval itself.
type StaticUploads struct {
	PublicPrefix string
	Dir          string
}

func Setup(
	memoryHandler *handler.MemoryHandler,
	promptHandler *handler.PromptHandler,
	categoryHandler *handler.CategoryHandler,
	uploads *StaticUploads,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors())
	r.Use(ginmetrics.PrometheusMiddleware("memorymap"))

	r.GET("/prompts/random", promptHandler.RandomPrompt)
	r.GET("/prompts", promptHandler.ListPrompts)
	r.GET("/memories", memoryHandler.ListMemories)
	r.POST("/memories", memoryHandler.CreateMemory)
	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if uploads != nil {
		r.Static(uploads.PublicPrefix, uploads.Dir)
	}
	return r
}

// cors allows the browser front-end to call the API from another origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
