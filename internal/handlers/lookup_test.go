// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unifaq/core/internal/library"
	"github.com/unifaq/core/internal/models"
)

const (
	testGroups = `[
		{"sgi": 1, "mgi": 1, "R_k": 0.9011, "Q_k": 0.848},
		{"sgi": 2, "mgi": 1, "R_k": 0.6744, "Q_k": 0.540},
		{"sgi": 14, "mgi": 5, "R_k": 1.0000, "Q_k": 1.200}
	]`

	testInteractions = `[
		{"mgi1": 1, "mgi2": 2, "a_ij": 1.0, "a_ji": 2.0, "b_ij": 0.1, "b_ji": 0.2, "c_ij": 0.01, "c_ji": 0.02},
		{"mgi1": 1, "mgi2": 5, "a_ij": 986.5, "a_ji": 156.4, "b_ij": 0, "b_ji": 0, "c_ij": 0, "c_ji": 0}
	]`
)

func newTestLibrary(t *testing.T) *library.ParameterLibrary {
	t.Helper()

	lib := library.New()
	require.NoError(t, lib.PopulateString(testGroups, testInteractions))
	return lib
}

type failingLibrary struct{}

var errBackend = errors.New("backend unavailable")

func (failingLibrary) GetGroup(int) (models.Group, error) { return models.Group{}, errBackend }

func (failingLibrary) GetInteractionParameters(int, int) (models.InteractionParameters, error) {
	return models.InteractionParameters{}, errBackend
}

func (failingLibrary) Component(...int) (models.Component, error) {
	return models.Component{}, errBackend
}

func (failingLibrary) Stats() models.Stats { return models.Stats{} }

func TestGroupHandler(t *testing.T) {
	handler := GroupHandler(newTestLibrary(t))

	t.Run("returns the group", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=14", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var group models.Group
		require.NoError(t, json.NewDecoder(w.Body).Decode(&group))
		assert.Equal(t, models.Group{SGI: 14, MGI: 5, Rk: 1.0, Qk: 1.2}, group)
	})

	t.Run("returns 404 for unknown group", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=99", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "group 99")
	})

	t.Run("returns 400 for missing sgi", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing query parameter: sgi")
	})

	t.Run("returns 400 for non-integer sgi", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=CH3", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 405 for POST request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/group?sgi=1", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("pretty prints on request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=1&pretty=true", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Contains(t, w.Body.String(), "\n  \"sgi\": 1")
	})

	t.Run("returns 500 for unexpected errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/group?sgi=1", nil)
		w := httptest.NewRecorder()

		GroupHandler(failingLibrary{})(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "backend unavailable")
	})
}

func TestInteractionHandler(t *testing.T) {
	handler := InteractionHandler(newTestLibrary(t))

	get := func(t *testing.T, query string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/interaction?"+query, nil)
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	t.Run("returns stored direction", func(t *testing.T) {
		w := get(t, "mgi1=1&mgi2=5")
		require.Equal(t, http.StatusOK, w.Code)

		var params models.InteractionParameters
		require.NoError(t, json.NewDecoder(w.Body).Decode(&params))
		assert.Equal(t, 986.5, params.Aij)
		assert.Equal(t, 156.4, params.Aji)
	})

	t.Run("returns reversed direction", func(t *testing.T) {
		w := get(t, "mgi1=2&mgi2=1")
		require.Equal(t, http.StatusOK, w.Code)

		var params models.InteractionParameters
		require.NoError(t, json.NewDecoder(w.Body).Decode(&params))
		assert.Equal(t, models.InteractionParameters{
			MGI1: 2, MGI2: 1,
			Aij: 2.0, Aji: 1.0,
			Bij: 0.2, Bji: 0.1,
			Cij: 0.02, Cji: 0.01,
		}, params)
	})

	t.Run("returns 404 for unknown pair", func(t *testing.T) {
		w := get(t, "mgi1=3&mgi2=4")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 when a group is missing", func(t *testing.T) {
		w := get(t, "mgi1=1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "mgi2")
	})

	t.Run("returns 405 for DELETE request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/interaction?mgi1=1&mgi2=2", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestComponentHandler(t *testing.T) {
	handler := ComponentHandler(newTestLibrary(t))

	t.Run("returns groups and main groups", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/component?sgi=1&sgi=2&sgi=14", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response ComponentResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Len(t, response.Groups, 3)
		assert.Equal(t, []int{1, 5}, response.MainGroups)
	})

	t.Run("returns 404 for unknown group", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/component?sgi=1&sgi=77", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 without groups", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/component", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 for invalid group", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/component?sgi=1&sgi=x", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "sgi: x"))
	})
}
