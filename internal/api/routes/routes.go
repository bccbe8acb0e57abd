package routes

import (
	"bookmark-manager-backend/internal/api/handlers"
	"bookmark-manager-backend/internal/api/middleware"
	"bookmark-manager-backend/internal/auth"
	"bookmark-manager-backend/internal/config"
	"bookmark-manager-backend/internal/repository"
	"bookmark-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	bookmarkRepo := repository.NewBookmarkRepository(db)
	bookmarkTagRepo := repository.NewBookmarkTagRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	bookmarkService := service.NewBookmarkService(bookmarkRepo, bookmarkTagRepo, tagRepo, validator)
	exportService := service.NewExportService(bookmarkRepo, bookmarkTagRepo, tagRepo)
	tagService := service.NewTagService(tagRepo, validator)
	authService := auth.NewAuthService(userRepo, validator, cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers. The bookmark and tag services are scope-agnostic:
	// the public handlers pin user id 0, the owner handlers take it from the
	// authenticated context.
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	publicBookmarks := handlers.NewBookmarkHandler(bookmarkService, exportService, "public", false)
	myBookmarks := handlers.NewBookmarkHandler(bookmarkService, exportService, "my", true)
	publicTags := handlers.NewTagHandler(tagService, false)
	myTags := handlers.NewTagHandler(tagService, true)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public collection
		registerBookmarkRoutes(v1.Group("/bookmarks"), publicBookmarks)
		registerTagRoutes(v1.Group("/tags"), publicTags)

		// Per-user collection
		my := v1.Group("/my", authMiddleware.RequireAuth())
		{
			registerBookmarkRoutes(my.Group("/bookmarks"), myBookmarks)
			registerTagRoutes(my.Group("/tags"), myTags)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

func registerBookmarkRoutes(g *gin.RouterGroup, h *handlers.BookmarkHandler) {
	g.GET("", h.ListBookmarks)
	g.POST("", h.CreateBookmark)
	g.GET("/random", h.RandomBookmarks)
	g.GET("/recent", h.RecentBookmarks)
	g.GET("/search", h.SearchBookmarks)
	g.GET("/export", h.ExportBookmarks)
	g.POST("/batch-delete", h.BatchDeleteBookmarks)
	g.POST("/sort", h.SortBookmarks)
	g.POST("/sort/reconcile", h.ReconcileSortBookmarks)
	g.GET("/:id", h.GetBookmark)
	g.PUT("/:id", h.UpdateBookmark)
	g.DELETE("/:id", h.DeleteBookmark)
}

func registerTagRoutes(g *gin.RouterGroup, h *handlers.TagHandler) {
	g.GET("", h.ListTags)
	g.POST("", h.CreateTag)
	g.PUT("/:id", h.UpdateTag)
	g.DELETE("/:id", h.DeleteTag)
}
