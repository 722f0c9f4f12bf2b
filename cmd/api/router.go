package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"productstore-backend/internal/shared/middleware"
	"productstore-backend/internal/shared/response"
	"productstore-backend/pkg/container"
)

// SetupRouter registers middleware and all API routes. Reads are public;
// writes and account operations require a valid access token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unavailable")
			return
		}

		// A degraded cache is reported but does not fail the check.
		redisStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			redisStatus = "down"
		}

		response.Success(ctx, http.StatusOK, "OK", gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"redis":   redisStatus,
		})
	})

	auth := middleware.AuthMiddleware(c.JWTManager)

	setupAuthRoutes(v1, c)
	setupUserRoutes(v1, c, auth)
	setupProductRoutes(v1, c, auth)
	setupCategoryRoutes(v1, c, auth)
	setupAuthorRoutes(v1, c, auth)

	return router
}

func setupAuthRoutes(rg *gin.RouterGroup, c *container.Container) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

func setupUserRoutes(rg *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)

		users.PUT("/me/password", auth, c.UserHandler.ChangePassword)
		users.PUT("/:id", auth, c.UserHandler.Update)
		users.DELETE("/:id", auth, c.UserHandler.Delete)
	}
}

func setupProductRoutes(rg *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	products := rg.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.GET("/cheapest", c.ProductHandler.Cheapest)
		products.GET("/:id", c.ProductHandler.GetByID)

		products.POST("", auth, c.ProductHandler.Create)
		products.PUT("/:id", auth, c.ProductHandler.Update)
		products.DELETE("/:id", auth, c.ProductHandler.Delete)
	}
}

func setupCategoryRoutes(rg *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	categories := rg.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)

		categories.POST("", auth, c.CategoryHandler.Create)
		categories.PUT("/:id", auth, c.CategoryHandler.Update)
		categories.DELETE("/:id", auth, c.CategoryHandler.Delete)
	}
}

func setupAuthorRoutes(rg *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	authors := rg.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)

		authors.POST("", auth, c.AuthorHandler.Create)
		authors.PUT("/:id", auth, c.AuthorHandler.Update)
		authors.DELETE("/:id", auth, c.AuthorHandler.Delete)
	}
}
