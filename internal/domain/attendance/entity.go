package attendance

// Status is the closed set of values an attendance record can hold.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// ParseStatus accepts exactly "Present" or "Absent".
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPresent, StatusAbsent:
		return Status(s), true
	default:
		return "", false
	}
}

// Attendance is one employee's mark for one calendar day. Date is kept as
// the YYYY-MM-DD string the caller sent.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	Status     Status
}
