package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/handlers"
	"github.com/navikt/ztalks/internal/api"
	"github.com/navikt/ztalks/internal/config"
	"github.com/navikt/ztalks/internal/kiosk"
	"github.com/navikt/ztalks/internal/metrics"
	"github.com/navikt/ztalks/internal/models"
	"github.com/navikt/ztalks/internal/pretalx"
	"github.com/navikt/ztalks/internal/repository"
	"github.com/navikt/ztalks/internal/service"
	"github.com/navikt/ztalks/internal/store"
	"github.com/navikt/ztalks/internal/web"
)

func main() {
	kioskConfig := config.GetKioskConfig()
	redisConfig := config.GetRedisConfig()
	loc := kioskConfig.Location()

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Check if we're using a Redis repository, and if so, close it properly on exit
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	m := metrics.New()
	scheduleStore := store.NewScheduleStore(repo, m)
	client := pretalx.NewClient(kioskConfig.ScheduleURL, kioskConfig.FetchTimeout)
	synchronizer := service.NewSynchronizer(client, scheduleStore, m)

	synchronizer.RegisterUpdateCallback(func(s models.Schedule) {
		log.Printf("Schedule updated from %s: rooms %v", client.URL(), s.RoomNames())
	})

	// Set up the board the kiosk renders to
	hub := web.NewEventHub()
	m.ObserveClients(hub.Clients)
	board := web.NewBoard(hub)
	webHandler, err := web.NewHandler(board, hub, "ztalks", loc)
	if err != nil {
		log.Fatalf("Failed to initialize web handler: %v", err)
	}

	k := kiosk.New(synchronizer, scheduleStore, board, kiosk.Options{
		Location:         loc,
		RotationInterval: kioskConfig.RotationInterval,
		LabelInterval:    kioskConfig.LabelInterval,
		HiddenRooms:      kioskConfig.HiddenRooms,
		Metrics:          m,
	})

	syncScheduler, err := kiosk.NewSyncScheduler(kioskConfig.SyncSchedule, loc, k)
	if err != nil {
		log.Fatalf("Failed to initialize sync schedule: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := k.Run(ctx); err != nil {
			log.Printf("Kiosk stopped: %v", err)
		}
	}()
	syncScheduler.Start()

	// Set up API routes and the web UI on one mux
	mux := api.SetupRoutes(k, m.Handler())
	webHandler.SetupRoutes(mux)

	handler := handlers.LoggingHandler(os.Stdout,
		handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
			web.WrapMuxWithMiddleware(mux)))

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + kioskConfig.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting ztalks server on port %s for %s", kioskConfig.Port, kioskConfig.ScheduleURL)
		serverErrors <- server.ListenAndServe()
	}()

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}

	case <-ctx.Done():
		log.Println("Shutting down server...")

		// Stop requesting syncs and wait for a running one to finish
		<-syncScheduler.Stop().Done()
		<-k.Done()

		// Close SSE connections before the server waits for open requests
		webHandler.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			log.Printf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
