package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/traffic"
	"github.com/julianstephens/commutewell/internal/validation"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) listRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := s.store.GetAllRoutes()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to load routes"})
		return
	}
	writeJSON(w, http.StatusOK, routes)
}

func (s *Server) createRoute(w http.ResponseWriter, r *http.Request) {
	var route models.CommuteRoute
	if err := json.NewDecoder(r.Body).Decode(&route); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}

	if ferr := validation.Route(route); ferr != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: ferr.Message, Field: ferr.Field})
		return
	}

	route.ID = uuid.NewString()
	if err := s.store.SaveRoute(route); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to save route"})
		return
	}
	writeJSON(w, http.StatusCreated, route)
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	route, found, err := s.store.GetRoute(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to load route"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Route not found"})
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func (s *Server) updateRoute(w http.ResponseWriter, r *http.Request) {
	route, found, err := s.store.GetRoute(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to load route"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Route not found"})
		return
	}

	var patch models.RoutePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if ferr := validation.RoutePatch(patch); ferr != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: ferr.Message, Field: ferr.Field})
		return
	}

	patch.Apply(&route)
	if err := s.store.SaveRoute(route); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to save route"})
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func (s *Server) getPrediction(w http.ResponseWriter, r *http.Request) {
	route, found, err := s.store.GetRoute(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to load route"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Route not found"})
		return
	}

	writeJSON(w, http.StatusOK, traffic.Predict(r.Context(), route, s.annotator))
}

type deviceSyncRequest struct {
	Status constants.TrafficStatus `json:"status"`
}

type deviceSyncResponse struct {
	Success bool `json:"success"`
}

func (s *Server) deviceSync(w http.ResponseWriter, r *http.Request) {
	var req deviceSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if err := validation.DeviceStatus(req.Status); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error(), Field: "status"})
		return
	}

	logger.Info("Device synced", "status", req.Status)
	writeJSON(w, http.StatusOK, deviceSyncResponse{Success: true})
}
