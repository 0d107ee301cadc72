package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Daskott/keepme/contacts"
	"github.com/go-playground/validator"
)

type ResponsePayload struct {
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func (s *Server) writeResponse(rw http.ResponseWriter, payLoad ResponsePayload, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		s.logg.Error(payLoad.Errors)
	} else if statusCode >= http.StatusBadRequest {
		s.logg.Info(payLoad.Errors)
	}

	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(payLoad)
}

func (s *Server) writeError(rw http.ResponseWriter, err error) {
	s.writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusForError(err))
}

func statusForError(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case contacts.IsValidationError(err), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, contacts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, contacts.ErrEmptyDirectory):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func validationMessages(err error) []string {
	return strings.Split(err.Error(), "\n")
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func (s *Server) serve(server *http.Server) {
	s.logg.Infof("KeepMe server is listening on %v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logg.Fatal(err)
	}
}

func (s *Server) cleanup(server *http.Server) {
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutDown); err != nil {
		s.logg.Fatalf("KeepMe server shutdown failed:%+s", err)
	}

	s.logg.Infof("KeepMe server stopped properly")
}
