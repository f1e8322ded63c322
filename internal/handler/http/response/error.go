package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Messages())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, apperror.Message(err))
	case errors.Is(err, employee.ErrEmployeeIDExists),
		errors.Is(err, employee.ErrEmailExists):
		Conflict(w, apperror.Message(err))

	// Default: storage failures and lost insert races alike
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w)
	}
}
