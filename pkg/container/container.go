package container

import (
	"context"
	"time"

	"productstore-backend/internal/config"
	authorHandler "productstore-backend/internal/domains/author/handler"
	authorRepo "productstore-backend/internal/domains/author/repository"
	authorSvc "productstore-backend/internal/domains/author/service"
	categoryHandler "productstore-backend/internal/domains/category/handler"
	categoryRepo "productstore-backend/internal/domains/category/repository"
	categorySvc "productstore-backend/internal/domains/category/service"
	productHandler "productstore-backend/internal/domains/product/handler"
	productRepo "productstore-backend/internal/domains/product/repository"
	productSvc "productstore-backend/internal/domains/product/service"
	userHandler "productstore-backend/internal/domains/user/handler"
	userRepo "productstore-backend/internal/domains/user/repository"
	userSvc "productstore-backend/internal/domains/user/service"
	infraCache "productstore-backend/internal/infrastructure/cache"
	"productstore-backend/internal/infrastructure/database"
	"productstore-backend/pkg/jwt"
	"productstore-backend/pkg/logger"
)

// Container wires configuration, infrastructure, repositories, services and
// handlers in dependency order.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *infraCache.RedisCache

	JWTManager *jwt.Manager

	ProductHandler  *productHandler.ProductHandler
	CategoryHandler *categoryHandler.CategoryHandler
	AuthorHandler   *authorHandler.AuthorHandler
	UserHandler     *userHandler.UserHandler
}

// New builds the full dependency graph. The database is required; a Redis
// that is down only degrades caching.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Cache reads will miss and writes will fail loudly in logs.
		logger.Error("redis unavailable, continuing without warm cache", err)
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	categoryRepository := categoryRepo.NewPostgresRepository(db.Pool, redisCache)
	authorRepository := authorRepo.NewPostgresRepository(db.Pool, redisCache)
	userRepository := userRepo.NewPostgresRepository(db.Pool)
	productRepository := productRepo.NewPostgresRepository(db.Pool, redisCache)

	categoryService := categorySvc.NewCategoryService(categoryRepository)
	authorService := authorSvc.NewAuthorService(authorRepository)
	userService := userSvc.NewUserService(userRepository, jwtManager)
	productService := productSvc.NewProductService(productRepository)

	return &Container{
		Config:          cfg,
		DB:              db,
		Cache:           redisCache,
		JWTManager:      jwtManager,
		ProductHandler:  productHandler.NewProductHandler(productService),
		CategoryHandler: categoryHandler.NewCategoryHandler(categoryService),
		AuthorHandler:   authorHandler.NewAuthorHandler(authorService),
		UserHandler:     userHandler.NewUserHandler(userService),
	}, nil
}

// Cleanup releases infrastructure resources.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
}
