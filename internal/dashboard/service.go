package dashboard

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
)

// RepositoryAPI defines the aggregate count queries behind the dashboard.
type RepositoryAPI interface {
	CountEmployees() (int64, error)
	CountAttendance() (int64, error)
	CountAttendanceOn(date time.Time, status string) (int64, error)
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

// Stats runs four independent aggregate queries; there is no cross-filtering
// between them.
func (s *Service) Stats() (*StatsResponse, error) {
	employees, err := s.repo.CountEmployees()
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, err
	}

	records, err := s.repo.CountAttendance()
	if err != nil {
		s.logger.Error("failed to count attendance records", "error", err)
		return nil, err
	}

	today := attendance.Today()
	present, err := s.repo.CountAttendanceOn(today, attendance.StatusPresent)
	if err != nil {
		s.logger.Error("failed to count present today", "error", err)
		return nil, err
	}

	absent, err := s.repo.CountAttendanceOn(today, attendance.StatusAbsent)
	if err != nil {
		s.logger.Error("failed to count absent today", "error", err)
		return nil, err
	}

	return &StatsResponse{
		TotalEmployees:         employees,
		TotalAttendanceRecords: records,
		PresentToday:           present,
		AbsentToday:            absent,
	}, nil
}
