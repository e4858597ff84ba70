package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/hrms-lite/internal/dashboard"
)

// StatsRepository runs the dashboard aggregates as plain SQL over sqlx;
// Rebind keeps the placeholders portable across drivers.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) dashboard.RepositoryAPI {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.db.Get(&count, "SELECT COUNT(*) FROM employees")
	return count, err
}

func (r *StatsRepository) CountAttendance() (int64, error) {
	var count int64
	err := r.db.Get(&count, "SELECT COUNT(*) FROM attendance")
	return count, err
}

func (r *StatsRepository) CountAttendanceOn(date time.Time, status string) (int64, error) {
	var count int64
	query := r.db.Rebind("SELECT COUNT(*) FROM attendance WHERE date = ? AND status = ?")
	err := r.db.Get(&count, query, date, status)
	return count, err
}
