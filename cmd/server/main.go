/*
main.go - HTTP server entry point

PURPOSE:
  Serves the payroll engine over HTTP. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the data source (SQLite, or in-memory fixtures)
  3. Seed the canonical fixtures if the store is empty
  4. Create the runner, handler, and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080)
  -db        SQLite database path; empty means in-memory fixtures,
             ":memory:" means an in-memory SQLite database
  -paystubs  Directory for PDF pay statements; empty disables them

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database connection
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/dispatch"
	"github.com/warp/payroll-engine/fixtures"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/memory"
	"github.com/warp/payroll-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "", "SQLite database path (empty: in-memory fixtures)")
	paystubDir := flag.String("paystubs", "", "Directory for PDF pay statements (empty: disabled)")
	flag.Parse()

	// Initialize source
	source, cleanup, err := openSource(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize data source: %v", err)
	}
	defer cleanup()

	// Initialize dispatcher
	var dispatcher payroll.Dispatcher = dispatch.NewConsole()
	if *paystubDir != "" {
		dispatcher = dispatch.NewMulti(dispatcher, dispatch.NewPaystub(*paystubDir))
	}

	runner := payroll.NewRunner(source, dispatcher)
	handler := api.NewHandler(runner)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
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

// openSource picks the data source for the flag value: an in-memory
// fixture source when no path is given, otherwise SQLite seeded with the
// canonical fixtures on first run.
func openSource(dbPath string) (payroll.Source, func(), error) {
	if dbPath == "" {
		source := memory.New(fixtures.Canonical(), fixtures.CanonicalEntries())
		return source, func() {}, nil
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	empty, err := store.Empty(ctx)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if empty {
		if err := store.Seed(ctx, fixtures.Canonical(), fixtures.CanonicalEntries()); err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Printf("Seeded canonical fixtures into %s", dbPath)
	}

	return store, func() { store.Close() }, nil
}
