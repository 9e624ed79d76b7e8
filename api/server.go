// Package api exposes the equation service over HTTP.
//
// Routes:
//
//	POST /api/equations/store         {"equation": "x + y"}      -> 201 {"id": 1}
//	GET  /api/equations                                          -> 200 [{"id": 1, "infix": "x + y"}]
//	POST /api/equations/{id}/evaluate {"variables": {"x": 1}}    -> 200 {"result": 2}
//
// Errors are JSON envelopes with timestamp, status, error, and message
// fields; missing-variable errors additionally name the variable.
package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/akeriat/equations/service"
)

// Server routes equation requests to a service.
type Server struct {
	svc *service.Service
	log zerolog.Logger
	r   *mux.Router
}

// NewServer creates a server around svc.
func NewServer(svc *service.Service, log zerolog.Logger) *Server {
	s := &Server{svc: svc, log: log, r: mux.NewRouter()}
	s.r.HandleFunc("/api/equations/store", s.handleStore).Methods(http.MethodPost)
	s.r.HandleFunc("/api/equations", s.handleList).Methods(http.MethodGet)
	s.r.HandleFunc("/api/equations/{id:[0-9]+}/evaluate", s.handleEvaluate).Methods(http.MethodPost)
	s.r.Use(s.logRequests)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

type storeRequest struct {
	Equation string `json:"equation"`
}

type storeResponse struct {
	ID int64 `json:"id"`
}

type equationSummary struct {
	ID    int64  `json:"id"`
	Infix string `json:"infix"`
}

type evaluateRequest struct {
	Variables map[string]float64 `json:"variables"`
}

type evaluateResponse struct {
	Result float64 `json:"result"`
}

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed JSON", "request body contains invalid JSON", "")
		return
	}
	if strings.TrimSpace(req.Equation) == "" {
		s.writeError(w, http.StatusBadRequest, "Validation Failed", "equation cannot be blank", "")
		return
	}
	id, err := s.svc.Store(req.Equation)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, storeResponse{ID: id})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entities := s.svc.List()
	out := make([]equationSummary, len(entities))
	for i, e := range entities {
		out[i] = equationSummary{ID: e.ID, Infix: e.Infix}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid Argument", "equation id must be an integer", "")
		return
	}
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed JSON", "request body contains invalid JSON", "")
		return
	}
	if req.Variables == nil {
		req.Variables = map[string]float64{}
	}
	result, err := s.svc.Evaluate(id, req.Variables)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		// JSON has no encoding for NaN or infinities.
		s.writeError(w, http.StatusBadRequest, "Arithmetic Error", "result is not a finite number", "")
		return
	}
	s.writeJSON(w, http.StatusOK, evaluateResponse{Result: result})
}

// statusWriter records the status code written to a response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
