package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/akeriat/equations"
	"github.com/akeriat/equations/service"
)

// errorBody is the envelope for all error responses.
type errorBody struct {
	Timestamp       time.Time `json:"timestamp"`
	Status          int       `json:"status"`
	Error           string    `json:"error"`
	Message         string    `json:"message"`
	MissingVariable string    `json:"missingVariable,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("writing response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind, msg, missing string) {
	s.writeJSON(w, status, errorBody{
		Timestamp:       time.Now().UTC(),
		Status:          status,
		Error:           kind,
		Message:         msg,
		MissingVariable: missing,
	})
}

// writeServiceError maps expression and service errors to HTTP responses.
// Bad expressions and bad bindings are the client's fault; only unrecognized
// errors become 500s.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var (
		syntax   equations.SyntaxError
		missing  *equations.MissingVariableError
		divzero  *equations.DivisionByZeroError
		arg      *equations.ArgumentError
		notfound *service.NotFoundError
	)
	switch {
	case errors.As(err, &syntax):
		s.writeError(w, http.StatusBadRequest, "Invalid Equation Syntax", err.Error(), "")
	case errors.As(err, &missing):
		s.writeError(w, http.StatusBadRequest, "Missing Variable", err.Error(), missing.Name)
	case errors.As(err, &divzero):
		s.writeError(w, http.StatusBadRequest, "Arithmetic Error", err.Error(), "")
	case errors.As(err, &arg):
		s.writeError(w, http.StatusBadRequest, "Invalid Argument", err.Error(), "")
	case errors.As(err, &notfound):
		s.writeError(w, http.StatusNotFound, "Equation Not Found", err.Error(), "")
	default:
		s.log.Error().Err(err).Msg("internal error")
		s.writeError(w, http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", "")
	}
}
