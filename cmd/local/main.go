package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BadrRibzat/llm-model/cmd"
	"github.com/BadrRibzat/llm-model/internal/api"
	"github.com/BadrRibzat/llm-model/internal/chat"
	"github.com/BadrRibzat/llm-model/internal/core"
	"github.com/BadrRibzat/llm-model/internal/database"
	"github.com/BadrRibzat/llm-model/internal/docstore"
	"github.com/BadrRibzat/llm-model/internal/messaging"
)

// Local mode runs the whole pipeline in one process with no external
// services: sqlite, an in-memory document store and queue, and a stub
// generator unless a local inference server is configured.
type Config struct {
	Root              string `env:"ROOT" envDefault:"./llm-chat"`
	Port              int    `env:"PORT" envDefault:"3001"`
	LocalInferenceURL string `env:"LOCAL_INFERENCE_URL"`
	GenerateTimeout   int    `env:"GENERATE_TIMEOUT" envDefault:"30"`
}

func createDatabase(root string) *gorm.DB {
	path := filepath.Join(root, "db", "llm-chat.db")
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.GetMigrator(db).Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createServer(cfg Config, db *gorm.DB) *http.Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	loaders := []core.GeneratorLoader{
		core.StaticLoader("This is a locally generated placeholder response."),
	}
	if cfg.LocalInferenceURL != "" {
		loaders = []core.GeneratorLoader{
			core.LocalLoader(cfg.LocalInferenceURL),
			loaders[0],
		}
	}
	generation := core.NewService(loaders, time.Duration(cfg.GenerateTimeout)*time.Second)

	pipeline := chat.NewPipeline(db, docstore.NewInMemoryStore(), generation, messaging.NewInMemoryQueue())

	chatHandler := api.NewChatService(db, pipeline)

	r.Route("/api/v1", func(r chi.Router) {
		chatHandler.AddRoutes(r)
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
}

func main() {
	cmd.LoadEnvFile()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db := createDatabase(cfg.Root)
	server := createServer(cfg, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("Local server listening on port %d", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	log.Println("Server stopped.")
}
