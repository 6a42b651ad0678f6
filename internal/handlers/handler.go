package handlers

import (
	"bloglist/internal/logger"
	"bloglist/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Cross-origin requests are permitted from any origin.
	router.Use(cors.Default())

	// The error normalizer wraps everything after it, including the token
	// extractor, so aborted requests still get a mapped response.
	router.Use(h.requestLogger, h.errorHandler, h.tokenExtractor)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerBlogRoutes(api)
		h.registerUserRoutes(api)
		api.POST("/login", h.login)
	}

	router.NoRoute(h.unknownEndpoint)

	return router
}

func (h *Handler) registerBlogRoutes(api *gin.RouterGroup) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", h.listBlogs)
		blogs.POST("", h.createBlog)
		blogs.GET("/stats", h.blogStats)
		blogs.GET("/:id", h.getBlog)
		blogs.PUT("/:id", h.updateBlog)
		blogs.DELETE("/:id", h.deleteBlog)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
	}
}
