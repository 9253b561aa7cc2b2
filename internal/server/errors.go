package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/internship-recommender/internal/recommend"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *recommend.NotFoundError
	var invalid *recommend.InvalidInputError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code and writes it as a JSON error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		message = describeValidation(validationErrs[0])
	}
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	s.errorResponse(w, status, message)
}
