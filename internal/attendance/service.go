package attendance

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/hrms-lite/internal"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// RepositoryAPI defines the data access methods for attendance records.
type RepositoryAPI interface {
	// Upsert atomically creates the record or refreshes status and
	// created_at of the existing (employee_id, date) row, filling in the
	// surviving surrogate id.
	Upsert(rec *attendanceDatamodel.Attendance) error
	List(f Filter) ([]*attendanceDatamodel.JoinedRecord, error)
	CountByEmployee(employeeID string) (total, present, absent int64, err error)
}

// EmployeeDirectory resolves employee identities for referential checks and
// read-time enrichment.
type EmployeeDirectory interface {
	GetByID(employeeID string) (*employeeDatamodel.Employee, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

// MarkAttendance records attendance for an employee on a calendar date. A
// second call for the same (employee, date) overwrites the stored status and
// refreshes created_at; the caller cannot tell the two cases apart from the
// response.
func (s *Service) MarkAttendance(dto MarkAttendanceDTO) (*Record, error) {
	dto.Normalize()
	date, appErr := dto.Validate(Today())
	if appErr != nil {
		s.logger.Error("attendance validation failed", "error", appErr, "employee_id", dto.EmployeeID)
		return nil, appErr
	}

	emp, err := s.employees.GetByID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to look up employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, errors.NewStorageError(err)
	}
	if emp == nil {
		return nil, errors.NewEmployeeNotFoundError(dto.EmployeeID)
	}

	rec := &attendanceDatamodel.Attendance{
		EmployeeID: dto.EmployeeID,
		Date:       date,
		Status:     dto.Status,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Upsert(rec); err != nil {
		s.logger.Error("failed to upsert attendance", "error", err,
			"employee_id", dto.EmployeeID, "date", dto.Date)
		return nil, errors.NewStorageError(err)
	}

	s.logger.Info("attendance marked",
		"attendance_id", rec.ID,
		"employee_id", rec.EmployeeID,
		"date", dto.Date,
		"status", rec.Status)

	record := FromDataModel(rec)
	record.EmployeeName = emp.FullName
	record.EmployeeDepartment = emp.Department
	return record, nil
}

// ListAttendance returns records matching the filter, ordered by date
// descending then employee id ascending, each enriched with the owning
// employee's name and department.
func (s *Service) ListAttendance(f Filter) ([]*Record, error) {
	rows, err := s.repo.List(f)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err)
		return nil, err
	}
	return FromJoinedRecordSlice(rows), nil
}

func (s *Service) EmployeeSummary(employeeID string) (*SummaryResponse, error) {
	emp, err := s.employees.GetByID(employeeID)
	if err != nil {
		s.logger.Error("failed to look up employee for summary", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if emp == nil {
		return nil, errors.NewEmployeeNotFoundError(employeeID)
	}

	total, present, absent, err := s.repo.CountByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to count attendance", "error", err, "employee_id", employeeID)
		return nil, err
	}

	return &SummaryResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName,
		TotalDays:    total,
		PresentDays:  present,
		AbsentDays:   absent,
	}, nil
}
