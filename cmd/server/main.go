package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/profilecard/backend/internal/config"
	"github.com/profilecard/backend/internal/handlers"
	"github.com/profilecard/backend/internal/services"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	profiles, err := services.NewMongoProfileService(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer profiles.Close(context.Background())

	// Seeding failure must never block startup.
	if _, err := services.EnsureDefaultProfile(ctx, profiles, cfg.UploadDir); err != nil {
		logrus.WithError(err).Error("failed to seed default profile")
	}

	profileHandler := handlers.NewProfileHandler(profiles)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/get-profile", profileHandler.GetProfile)
	r.Put("/update-profile", profileHandler.UpdateProfile)
	r.Put("/profile-picture", profileHandler.UpdateProfilePicture)

	// Uploaded files (legacy filename-style pictures resolve against this).
	filesDir := http.Dir(cfg.UploadDir)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(filesDir)))

	// Everything else is either a frontend asset or a JSON 404.
	r.NotFound(handlers.StaticHandler(cfg.StaticDir))
	r.MethodNotAllowed(handlers.NotFound)

	logrus.WithField("addr", cfg.ServerAddress).Info("profile server starting")
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
