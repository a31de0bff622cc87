// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/unifaq/core/internal/models"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Library   *models.Stats     `json:"library,omitempty"`
}

var startTime = time.Now()

// HealthHandler reports service health without library details.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	NewHealthHandler(nil)(w, r)
}

// NewHealthHandler reports service health along with the record counts of lib.
func NewHealthHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   "unifaq-api",
			Uptime:    time.Since(startTime).String(),
			Details: map[string]string{
				"go_version": runtime.Version(),
				"num_cpu":    strconv.Itoa(runtime.NumCPU()),
			},
		}

		if lib != nil {
			stats := lib.Stats()
			response.Library = &stats
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}
