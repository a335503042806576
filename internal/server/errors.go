// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRunNotFound indicates a run was not found in the artifact store
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// ErrArtifactNotFound indicates the run exists but lacks the requested artifact
type ErrArtifactNotFound struct {
	RunID uuid.UUID
	Kind  string
}

func (e *ErrArtifactNotFound) Error() string {
	return fmt.Sprintf("artifact %q not found for run %s", e.Kind, e.RunID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrRunNotFound, *ErrArtifactNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
