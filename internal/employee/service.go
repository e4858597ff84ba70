package employee

import (
	"fmt"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/hrms-lite/internal"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

// RepositoryAPI defines the data access methods for employees. Lookups
// return (nil, nil) when no row matches.
type RepositoryAPI interface {
	Create(emp *employeeDatamodel.Employee) error
	GetAll() ([]*employeeDatamodel.Employee, error)
	GetByID(employeeID string) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	Delete(employeeID string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	existing, err := s.repo.GetByID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee id", "error", err, "employee_id", dto.EmployeeID)
		return nil, errors.NewStorageError(err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(
			fmt.Sprintf("employee with ID '%s' already exists", dto.EmployeeID),
			errors.ErrCodeDuplicateEmployeeID)
	}

	byEmail, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to check employee email", "error", err, "email", dto.Email)
		return nil, errors.NewStorageError(err)
	}
	if byEmail != nil {
		return nil, errors.NewConflictError(
			fmt.Sprintf("employee with email '%s' already exists", dto.Email),
			errors.ErrCodeDuplicateEmail)
	}

	dm := &employeeDatamodel.Employee{
		EmployeeID: dto.EmployeeID,
		FullName:   dto.FullName,
		Email:      dto.Email,
		Department: dto.Department,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(dm); err != nil {
		// duplicate checks above race with concurrent creates; surface any
		// integrity failure as a non-specific client error
		s.logger.Error("failed to create employee", "error", err, "employee_id", dto.EmployeeID)
		return nil, errors.NewStorageError(err)
	}

	s.logger.Info("employee created",
		"employee_id", dm.EmployeeID,
		"department", dm.Department)

	return FromDataModel(dm), nil
}

func (s *Service) GetAllEmployees() ([]*Employee, error) {
	dms, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return FromDataModelSlice(dms), nil
}

func (s *Service) GetEmployee(employeeID string) (*Employee, error) {
	dm, err := s.repo.GetByID(employeeID)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	if dm == nil {
		return nil, errors.NewEmployeeNotFoundError(employeeID)
	}
	return FromDataModel(dm), nil
}

// DeleteEmployee removes the employee and all owned attendance records as a
// single atomic unit.
func (s *Service) DeleteEmployee(employeeID string) error {
	dm, err := s.repo.GetByID(employeeID)
	if err != nil {
		s.logger.Error("failed to get employee for deletion", "error", err, "employee_id", employeeID)
		return err
	}
	if dm == nil {
		return errors.NewEmployeeNotFoundError(employeeID)
	}

	if err := s.repo.Delete(employeeID); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", employeeID)
		return err
	}

	s.logger.Info("employee deleted with attendance records", "employee_id", employeeID)
	return nil
}
