package employee

import "github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"

const msgMinLength = "String should have at least 1 character"

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate checks every field and, when the email is valid, rewrites it
// with its domain lowercased.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: msgMinLength,
		})
	}

	if r.FullName == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: msgMinLength,
		})
	}

	if email, ok := validator.NormalizeEmail(r.Email); ok {
		r.Email = email
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "value is not a valid email address",
		})
	}

	if r.Department == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: msgMinLength,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
