// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/unifaq/core/internal/library"
	"github.com/unifaq/core/internal/models"
)

// ValidateRequest carries both parameter tables as raw JSON.
type ValidateRequest struct {
	Groups       json.RawMessage `json:"groups"`
	Interactions json.RawMessage `json:"interactions"`
}

type ValidateResponse struct {
	Valid  bool          `json:"valid"`
	Stats  *models.Stats `json:"stats,omitempty"`
	Errors []string      `json:"errors,omitempty"`
}

// ValidateHandler populates a fresh library from the posted tables and
// reports either its stats or every population error.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	var req ValidateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	lib := library.New()
	if err := lib.Populate(req.Groups, req.Interactions); err != nil {
		writeJSON(w, r, http.StatusBadRequest, ValidateResponse{
			Valid:  false,
			Errors: strings.Split(err.Error(), "\n"),
		})
		return
	}

	stats := lib.Stats()
	writeJSON(w, r, http.StatusOK, ValidateResponse{Valid: true, Stats: &stats})
}
