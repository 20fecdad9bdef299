package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the dependencies of the HTTP layer.
type RouterConfig struct {
	BookStorePath       string
	AnnotationStorePath string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	library := NewLibraryController(cfg.BookStorePath, cfg.AnnotationStorePath)

	api := router.Group("/api")
	{
		api.GET("/health", library.Health)
		api.GET("/books", library.GetBooks)
		api.GET("/books/stats", library.GetStats)
		api.POST("/export", library.Export)
	}

	return router
}
