// Package service implements the equation workflows: store with structural
// deduplication, list, and evaluate by id.
package service

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akeriat/equations"
	"github.com/akeriat/equations/store"
)

// NotFoundError indicates an equation id with no stored entity.
type NotFoundError struct {
	ID int64
}

func (err *NotFoundError) Error() string {
	return "equation with id " + strconv.FormatInt(err.ID, 10) + " not found"
}

// Service coordinates parsing, deduplication, and evaluation over a store.
type Service struct {
	store *store.Memory
	log   zerolog.Logger
}

// New creates a service over st.
func New(st *store.Memory, log zerolog.Logger) *Service {
	return &Service{store: st, log: log}
}

// Store parses an infix expression and stores it, returning the stored id.
// Mathematically identical expressions share one entity: when the structural
// hash is already present, the existing id is returned. The stored text is
// the trimmed original spelling, so the first stored spelling wins.
func (s *Service) Store(infix string) (int64, error) {
	trimmed := strings.TrimSpace(infix)
	root, err := equations.Parse(trimmed)
	if err != nil {
		return 0, err
	}
	hash := equations.Hash(root)
	if e, ok := s.store.ByHash(hash); ok {
		s.log.Debug().Int64("id", e.ID).Str("hash", hash).Msg("duplicate equation")
		return e.ID, nil
	}
	// The postfix record is rebuilt from the source rather than carried out
	// of the parse above.
	tokens, err := equations.Tokenize(trimmed)
	if err != nil {
		return 0, err
	}
	postfix, err := equations.ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	types := make([]equations.Token, len(postfix))
	for i, tok := range postfix {
		types[i] = tok.Type
	}
	e := s.store.Insert(trimmed, types, hash)
	s.log.Info().Int64("id", e.ID).Str("hash", hash).Msg("stored equation")
	return e.ID, nil
}

// List returns all stored equations in id order.
func (s *Service) List() []*store.Entity {
	return s.store.All()
}

// Evaluate re-parses the stored infix for id and evaluates it with the given
// bindings. An unknown id is a NotFoundError.
func (s *Service) Evaluate(id int64, vars map[string]float64) (float64, error) {
	if vars == nil {
		return 0, &equations.ArgumentError{What: "variables map"}
	}
	e, ok := s.store.ByID(id)
	if !ok {
		return 0, &NotFoundError{ID: id}
	}
	root, err := equations.Parse(e.Infix)
	if err != nil {
		return 0, err
	}
	r, err := equations.Evaluate(root, vars)
	if err != nil {
		return 0, err
	}
	s.log.Debug().Int64("id", id).Float64("result", r).Msg("evaluated equation")
	return r, nil
}
