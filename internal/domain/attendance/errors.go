package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrDuplicateAttendance is returned when an insert loses a race against
	// another insert for the same employee and date.
	ErrDuplicateAttendance = errors.New("attendance already recorded for this employee and date")
)
