package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"filesmanager/internal/cache"
	"filesmanager/internal/config"
	"filesmanager/internal/database"
	"filesmanager/internal/domain"
	"filesmanager/internal/middleware"
	"filesmanager/internal/modules/app"
	"filesmanager/internal/modules/auth"
	"filesmanager/internal/modules/files"
	"filesmanager/internal/modules/users"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.FileNode{}); err != nil {
		log.Fatal(err)
	}

	sessions := cache.NewRedisStore(cfg.RedisAddr)
	defer sessions.Close()

	tasks := queue.NewClient(cfg.RedisAddr)
	defer tasks.Close()

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	content := storage.NewDiskStore(cfg.FolderPath)

	authService := auth.NewService(userRepo, sessions, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	userService := users.NewService(userRepo, tasks)
	userHandler := users.NewHandler(userService)

	fileService := files.NewService(fileRepo, content, tasks)
	fileHandler := files.NewHandler(fileService, authService)

	appHandler := app.NewHandler(sessions, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, userRepo, fileRepo)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	root := r.Group("/")
	{
		appHandler.RegisterRoutes(root)
		authHandler.RegisterRoutes(root)
		userHandler.RegisterPublicRoutes(root)
		fileHandler.RegisterPublicRoutes(root)

		protected := root.Group("/")
		protected.Use(middleware.Auth(authService))
		{
			userHandler.RegisterProtectedRoutes(protected)
			fileHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
