package dashboard

// DashboardResponse is the snapshot returned by GET /api/dashboard/
type DashboardResponse struct {
	TotalEmployees int64                `json:"total_employees"`
	PresentToday   int64                `json:"present_today"`
	AbsentToday    int64                `json:"absent_today"`
	NotMarkedToday int64                `json:"not_marked_today"`
	Departments    []DepartmentResponse `json:"departments"`
	Today          string               `json:"today"` // Format: "YYYY-MM-DD"
}

// DepartmentResponse is one bar of the department histogram
type DepartmentResponse struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}
