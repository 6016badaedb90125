package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"scene_backend/internal/app/router"
	"scene_backend/internal/config"
	scenesadapters "scene_backend/internal/feature/scenes/adapters"
	sceneshandler "scene_backend/internal/feature/scenes/transport/handler"
	scenesusecase "scene_backend/internal/feature/scenes/usecase"
	usersadapters "scene_backend/internal/feature/users/adapters"
	usershandler "scene_backend/internal/feature/users/transport/handler"
	usersusecase "scene_backend/internal/feature/users/usecase"
	"scene_backend/internal/infrastructure/mongodb"
	platformhandler "scene_backend/internal/platform/http/handler"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	slog.SetDefault(setupLogger(cfg.Debug))
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Document store
	db, err := mongodb.NewAdapter(mongodb.Config{
		URL:              cfg.MongoDBURL,
		Database:         cfg.DatabaseName,
		ConnectTimeout:   cfg.ConnectTimeout,
		OperationTimeout: cfg.OperationTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close mongodb connection", "error", err)
		}
	}()

	// Repository
	userRepo := usersadapters.NewUserMongo(db)
	sceneRepo := scenesadapters.NewSceneMongo(db)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo)
	sceneUC := scenesusecase.NewSceneUsecase(sceneRepo)

	// Handler
	userH := usershandler.NewUserHandler(userUC)
	sceneH := sceneshandler.NewSceneHandler(sceneUC)
	healthH := platformhandler.NewHealthHandler(db)

	r, err := router.NewRouter(cfg, userH, sceneH, healthH)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	slog.Info("starting server",
		"name", cfg.AppName, "version", cfg.AppVersion, "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}

// setupLogger configures the application logger: colored output in debug
// mode, JSON in production.
func setupLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
