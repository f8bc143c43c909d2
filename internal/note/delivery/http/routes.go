package http

import (
	"ai-notes/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Routes that
// call the LLM are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.GET("", h.List)
		notes.POST("", h.Create)
		notes.GET("/search", h.Search)
		notes.GET("/stats", h.Stats)
		notes.POST("/infer", h.Infer)
		notes.POST("/generate", mw.LLMRateLimit(), h.Generate)
		notes.POST("/generate-and-save", mw.LLMRateLimit(), h.GenerateAndSave)

		notes.GET("/:id", h.Detail)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
		notes.POST("/:id/translate", mw.LLMRateLimit(), h.Translate)
	}
}
