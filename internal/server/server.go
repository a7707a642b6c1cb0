package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/traffic"
)

// Server is the thin HTTP backend: route CRUD, the traffic prediction,
// and the device sync acknowledgement.
type Server struct {
	store     *storage.Store
	annotator traffic.Annotator
}

// New creates a server over the store with the given prediction annotator.
func New(store *storage.Store, annotator traffic.Annotator) *Server {
	return &Server{store: store, annotator: annotator}
}

// Handler builds the routed, CORS-wrapped, logged handler chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/routes", s.listRoutes).Methods("GET")
	r.HandleFunc("/api/routes", s.createRoute).Methods("POST")
	r.HandleFunc("/api/routes/{id}", s.getRoute).Methods("GET")
	r.HandleFunc("/api/routes/{id}", s.updateRoute).Methods("PUT")
	r.HandleFunc("/api/routes/{id}/prediction", s.getPrediction).Methods("GET")
	r.HandleFunc("/api/device/sync", s.deviceSync).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(loggingMiddleware(r))
}

// Seed creates the starter route when the store has none, so the app
// has something to predict against on first run.
func (s *Server) Seed() error {
	routes, err := s.store.GetAllRoutes()
	if err != nil {
		return err
	}
	if len(routes) > 0 {
		return nil
	}
	return s.store.SaveRoute(models.CommuteRoute{
		ID:             uuid.NewString(),
		Name:           "Daily Commute",
		Origin:         "Lathrop, CA",
		Destination:    "San Francisco, CA",
		DepartureStart: "17:00",
		DepartureEnd:   "20:00",
		TransportModes: []string{"drive", "bart"},
		IsActive:       true,
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
