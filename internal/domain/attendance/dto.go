package attendance

import "github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"

// MarkAttendanceRequest is the body of POST /api/attendance/.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "String should have at least 1 character",
		})
	}

	if !validator.IsDateFormat(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Value error, Date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Input should be 'Present' or 'Absent'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows a listing or count. Zero values mean "any".
type AttendanceFilter struct {
	EmployeeID string
	Date       string
	Status     Status
	Limit      int64
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

type AttendanceSummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	Total      int64  `json:"total"`
	Present    int64  `json:"present"`
	Absent     int64  `json:"absent"`
}
