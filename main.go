package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andrewpaige1/nodebook-study/admin"
	"github.com/andrewpaige1/nodebook-study/config"
	"github.com/andrewpaige1/nodebook-study/handlers"
	"github.com/andrewpaige1/nodebook-study/logger"
	"github.com/andrewpaige1/nodebook-study/middleware"
	"github.com/andrewpaige1/nodebook-study/models"
	"github.com/andrewpaige1/nodebook-study/session"
	"github.com/andrewpaige1/nodebook-study/state"
	"github.com/andrewpaige1/nodebook-study/store"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	appLog, err := logger.New(env.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := config.Connect(env)
	if err != nil {
		appLog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	st := store.New(store.NewGormBackend(db), appLog)
	app := state.New(st, models.DefaultCourses)

	h := &handlers.Handler{
		State:    app,
		Sessions: session.NewRegistry(0),
		Env:      env,
		Log:      appLog,
	}
	router := handlers.NewRouter(h, admin.NewRegistry(app, 0))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(appLog)(router))

	serverAddr := "0.0.0.0:" + env.Port
	appLog.Info("server listening", "addr", serverAddr, "development", env.IsDevelopment)

	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		appLog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
