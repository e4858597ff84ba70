package attendance

import (
	"time"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

type Record struct {
	ID                 int64     `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	Date               time.Time `json:"-"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	EmployeeName       string    `json:"employee_name,omitempty"`
	EmployeeDepartment string    `json:"employee_department,omitempty"`
}

// ParseDate parses a YYYY-MM-DD wire date into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Today returns the server's current calendar date at UTC midnight, the
// single clock used by the future-date validator and the dashboard.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Record {
	return &Record{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

func FromJoinedRecord(a *attendanceDatamodel.JoinedRecord) *Record {
	return &Record{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		Date:               a.Date,
		Status:             a.Status,
		CreatedAt:          a.CreatedAt,
		EmployeeName:       a.EmployeeName,
		EmployeeDepartment: a.EmployeeDepartment,
	}
}

func FromJoinedRecordSlice(records []*attendanceDatamodel.JoinedRecord) []*Record {
	result := make([]*Record, len(records))
	for i, a := range records {
		result[i] = FromJoinedRecord(a)
	}
	return result
}
