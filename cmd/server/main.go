/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift-engine server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env plus environment variables)
  2. Initialize SQLite store
  3. Build the roster catalogue and API handler
  4. Configure HTTP router
  5. Start server with graceful shutdown

CONFIGURATION:
  APP_PORT                      HTTP server port (default: 8080)
  APP_ENV                       Environment name (default: development)
  DB_PATH                       SQLite database path (default: ./data/shifts.db)
                                Use ":memory:" for an in-memory database
  OPERATOR_ROLE                 maquinista or usi (default: maquinista)
  OPERATOR_HOME_LOCATION        benidorm, denia or campello (default: benidorm)
  OPERATOR_PREVIOUS_YEAR_HOURS  Previous year's worked hours (default: 0)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/railops/shift-engine/api"
	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/config"
	"github.com/railops/shift-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	handler := api.NewHandler(store, catalogue.Default(), cfg.Operator)
	router := api.NewRouter(handler, cfg.App.Env)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d (role=%s, home=%s)",
			cfg.App.Port, cfg.Operator.Role, cfg.Operator.HomeLocation)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
