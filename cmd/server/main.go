package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/calis-tracker/internal/api"
	"alcyxob/calis-tracker/internal/config"
	"alcyxob/calis-tracker/internal/repository"
	"alcyxob/calis-tracker/internal/repository/dual"
	"alcyxob/calis-tracker/internal/repository/local"
	mongorepo "alcyxob/calis-tracker/internal/repository/mongo"
	"alcyxob/calis-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("Starting Calis Tracker server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}
	log.Info("Configuration loaded.")

	// --- Local Store (always on) ---
	store, err := local.Open(cfg.Local.Path)
	if err != nil {
		log.WithError(err).Fatal("could not open local store")
	}
	defer store.Close()
	localExerciseRepo := local.NewExerciseRepository(store)
	localChecklistRepo := local.NewChecklistRepository(store)

	// --- Remote Backend (optional) ---
	// A missing URI or an unreachable backend is not fatal: the tracker
	// runs local-only and the status endpoint reports it.
	var (
		remoteExerciseRepo  repository.ExerciseRepository
		remoteChecklistRepo repository.ChecklistRepository
		dbClient            *mongodriver.Client
	)
	if cfg.Database.URI != "" {
		dbClient, err = mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.WithError(err).Warn("could not connect to MongoDB, running local-only")
		} else {
			appDB := dbClient.Database(cfg.Database.Name)
			remoteExerciseRepo = mongorepo.NewExerciseRepository(appDB)
			remoteChecklistRepo = mongorepo.NewChecklistRepository(appDB)
			log.Info("Remote database connection established.")

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
				defer cancel()
				if err := mongorepo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises")); err != nil {
					log.WithError(err).Warn("failed to ensure exercise indexes")
				}
				if err := mongorepo.EnsureChecklistIndexes(ctx, appDB.Collection("daily_checklists")); err != nil {
					log.WithError(err).Warn("failed to ensure checklist indexes")
				}
			}()
		}
	} else {
		log.Info("No database URI configured, running local-only.")
	}
	if dbClient != nil {
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.WithError(err).Error("failed to disconnect MongoDB")
			}
		}()
	}

	// --- Dual Repositories ---
	health := dual.NewHealth(remoteExerciseRepo != nil)
	exerciseRepo := dual.NewExerciseRepository(remoteExerciseRepo, localExerciseRepo, health)
	checklistRepo := dual.NewChecklistRepository(remoteChecklistRepo, localChecklistRepo, health)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	if err := exerciseRepo.Sync(startupCtx); err != nil {
		log.WithError(err).Warn("startup sync with remote backend failed")
	}

	// --- Services ---
	exerciseService := service.NewExerciseService(exerciseRepo)
	checklistService := service.NewChecklistService(checklistRepo, exerciseRepo)

	// First run: populate the progress store from the program catalog.
	if _, err := exerciseService.EnsureSeeded(startupCtx); err != nil {
		log.WithError(err).Fatal("could not seed exercises")
	}

	// --- HTTP Server ---
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, exerciseService, checklistService, health)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("Server exiting.")
}
