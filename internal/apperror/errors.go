package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is returned for malformed input: progress outside 0-100,
	// end_time before start_time, missing required references.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when a referenced user, module, material,
	// challenge, question or answer does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSubmission is returned when an answer already exists for
	// the same (user, attempt, question) key.
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrForbidden is returned when a non-admin caller asks for another
	// user's aggregates.
	ErrForbidden = errors.New("forbidden")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error to the status code controllers should use.
// Anything outside the taxonomy is an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSubmission):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
