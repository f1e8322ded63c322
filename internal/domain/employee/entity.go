package employee

// Employee is a stored employee record. ID is assigned by the store on
// insert; EmployeeID is the caller-supplied business key and never changes.
type Employee struct {
	ID         string
	EmployeeID string
	FullName   string
	Email      string
	Department string
}
