package attendance

import "time"

// Attendance rows are unique per (employee_id, date); the composite index
// backs the insert-or-update write path.
type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;not null;index;uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;index;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// JoinedRecord is an attendance row enriched with the owning employee's
// name and department at read time.
type JoinedRecord struct {
	ID                 int64
	EmployeeID         string
	Date               time.Time
	Status             string
	CreatedAt          time.Time
	EmployeeName       string
	EmployeeDepartment string
}
