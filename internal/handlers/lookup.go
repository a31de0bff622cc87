// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/unifaq/core/internal/library"
	"github.com/unifaq/core/internal/models"
)

// Library is the query side of a populated parameter library.
type Library interface {
	GetGroup(sgi int) (models.Group, error)
	GetInteractionParameters(mgi1, mgi2 int) (models.InteractionParameters, error)
	Component(sgis ...int) (models.Component, error)
	Stats() models.Stats
}

type ComponentResponse struct {
	models.Component
	MainGroups []int `json:"main_groups"`
}

// GroupHandler serves GET /group?sgi=N.
func GroupHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		sgi, ok := intParam(w, r, "sgi")
		if !ok {
			return
		}

		group, err := lib.GetGroup(sgi)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, group)
	}
}

// InteractionHandler serves GET /interaction?mgi1=A&mgi2=B.
func InteractionHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		mgi1, ok := intParam(w, r, "mgi1")
		if !ok {
			return
		}

		mgi2, ok := intParam(w, r, "mgi2")
		if !ok {
			return
		}

		params, err := lib.GetInteractionParameters(mgi1, mgi2)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, params)
	}
}

// ComponentHandler serves GET /component?sgi=1&sgi=2.
func ComponentHandler(lib Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		values := r.URL.Query()["sgi"]
		if len(values) == 0 {
			http.Error(w, "Missing query parameter: sgi", http.StatusBadRequest)
			return
		}

		sgis := make([]int, 0, len(values))
		for _, v := range values {
			sgi, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "Invalid query parameter sgi: "+v, http.StatusBadRequest)
				return
			}
			sgis = append(sgis, sgi)
		}

		component, err := lib.Component(sgis...)
		if err != nil {
			writeLookupError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ComponentResponse{
			Component:  component,
			MainGroups: component.MainGroups(),
		})
	}
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		http.Error(w, "Missing query parameter: "+name, http.StatusBadRequest)
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "Invalid query parameter "+name+": "+raw, http.StatusBadRequest)
		return 0, false
	}

	return v, true
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, library.ErrNotFound) {
		http.Error(w, "Not found: "+err.Error(), http.StatusNotFound)
		return
	}

	log.Printf("Lookup failed: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
