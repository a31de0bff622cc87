// Package main starts an HTTP server that answers UNIFAQ group and interaction
// parameter lookups. The parameter tables are loaded once at start-up from the
// paths in the configuration; see internal/config.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/unifaq/core/cmd/api/middleware"
	"github.com/unifaq/core/internal/config"
	"github.com/unifaq/core/internal/handlers"
	"github.com/unifaq/core/internal/library"
)

func newRouter(lib *library.ParameterLibrary) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.NewHealthHandler(lib))
	mux.HandleFunc("/group", handlers.GroupHandler(lib))
	mux.HandleFunc("/interaction", handlers.InteractionHandler(lib))
	mux.HandleFunc("/component", handlers.ComponentHandler(lib))
	mux.HandleFunc("/validate", handlers.ValidateHandler)
	return mux
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lib, err := library.LoadFiles(settings.GroupsPath, settings.InteractionsPath)
	if err != nil {
		log.Fatalf("Failed to load parameters: %v", err)
	}

	stats := lib.Stats()
	log.Printf("Loaded %d groups and %d interaction parameter sets", stats.Groups, stats.InteractionParameters)

	logger := log.New(os.Stderr, "", log.LstdFlags)
	handler := middleware.Logging(logger, middleware.Cors(newRouter(lib)))

	log.Printf("🚀 Server starting on %s", settings.Addr)
	log.Fatal(http.ListenAndServe(settings.Addr, handler))
}
