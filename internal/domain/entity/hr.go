package entity

// Attendance is one employee's presence record for a day.
type Attendance struct {
	ID                   int64  `json:"id"`
	EmployeeEmail        string `json:"employee_email"`
	EmployeeEmailDisplay string `json:"employee_email_display"`
	EntryTime            string `json:"entry_time"`
	ExitTime             string `json:"exit_time"`
	Date                 string `json:"date"`
	Status               string `json:"status"` // "present", "absent", "late", "leave"
	Notes                string `json:"notes"`
}

// Contract is an employment contract between the dealer and an employee.
type Contract struct {
	ID                   int64  `json:"id"`
	EmployeeEmail        string `json:"employee_email"`
	EmployeeEmailDisplay string `json:"employee_email_display"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Terms                string `json:"terms"`
	Salary               string `json:"salary"`
	Status               string `json:"status"` // "active", "inactive", "terminated"
}
