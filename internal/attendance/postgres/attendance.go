package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

// Upsert relies on the unique (employee_id, date) constraint: a conflicting
// insert turns into an update of status and created_at, so concurrent writers
// for the same pair can never create two rows. The surviving row is read back
// to expose its surrogate id.
func (r *AttendanceRepository) Upsert(rec *attendanceDatamodel.Attendance) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "created_at"}),
	}).Create(rec).Error
	if err != nil {
		return err
	}
	return r.db.Where("employee_id = ? AND date = ?", rec.EmployeeID, rec.Date).First(rec).Error
}

func (r *AttendanceRepository) List(f attendance.Filter) ([]*attendanceDatamodel.JoinedRecord, error) {
	q := r.db.Table("attendance AS a").
		Select("a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name AS employee_name, e.department AS employee_department").
		Joins("JOIN employees e ON e.employee_id = a.employee_id")

	if f.EmployeeID != "" {
		q = q.Where("a.employee_id = ?", f.EmployeeID)
	}
	if f.OnDate != nil {
		q = q.Where("a.date = ?", *f.OnDate)
	}
	if f.StartDate != nil {
		q = q.Where("a.date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("a.date <= ?", *f.EndDate)
	}

	var rows []*attendanceDatamodel.JoinedRecord
	err := q.Order("a.date DESC, a.employee_id ASC").Scan(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) CountByEmployee(employeeID string) (total, present, absent int64, err error) {
	err = r.db.Model(&attendanceDatamodel.Attendance{}).
		Where("employee_id = ?", employeeID).
		Count(&total).Error
	if err != nil {
		return 0, 0, 0, err
	}

	err = r.db.Model(&attendanceDatamodel.Attendance{}).
		Where("employee_id = ? AND status = ?", employeeID, attendance.StatusPresent).
		Count(&present).Error
	if err != nil {
		return 0, 0, 0, err
	}

	err = r.db.Model(&attendanceDatamodel.Attendance{}).
		Where("employee_id = ? AND status = ?", employeeID, attendance.StatusAbsent).
		Count(&absent).Error
	if err != nil {
		return 0, 0, 0, err
	}

	return total, present, absent, nil
}
