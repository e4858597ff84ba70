package postgres_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/hrms-lite/internal/dashboard/postgres"
)

func TestDashboardPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Postgres Suite")
}

var _ = Describe("Stats Repository", func() {
	var (
		db   *sqlx.DB
		repo dashboard.RepositoryAPI
	)

	insertEmployee := func(id, name string) {
		_, err := db.Exec(
			"INSERT INTO employees (employee_id, full_name, email, department, created_at) VALUES (?, ?, ?, ?, ?)",
			id, name, id+"@example.com", "Engineering", time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
	}

	insertAttendance := func(employeeID string, date time.Time, status string) {
		_, err := db.Exec(
			"INSERT INTO attendance (employee_id, date, status, created_at) VALUES (?, ?, ?, ?)",
			employeeID, date, status, time.Now().UTC())
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = sqlx.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())

		schema := []string{
			`CREATE TABLE employees (
				employee_id TEXT PRIMARY KEY,
				full_name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				department TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE TABLE attendance (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				employee_id TEXT NOT NULL,
				date DATE NOT NULL,
				status TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL,
				UNIQUE (employee_id, date)
			)`,
		}
		for _, stmt := range schema {
			_, err = db.Exec(stmt)
			Expect(err).NotTo(HaveOccurred())
		}

		repo = dashboardPostgres.NewStatsRepository(db)
	})

	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})

	It("returns zeros on an empty database", func() {
		employees, err := repo.CountEmployees()
		Expect(err).NotTo(HaveOccurred())
		Expect(employees).To(BeZero())

		records, err := repo.CountAttendance()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeZero())

		present, err := repo.CountAttendanceOn(attendance.Today(), attendance.StatusPresent)
		Expect(err).NotTo(HaveOccurred())
		Expect(present).To(BeZero())
	})

	It("counts employees and attendance records", func() {
		insertEmployee("EMP001", "Jane Doe")
		insertEmployee("EMP002", "John Smith")

		today := attendance.Today()
		insertAttendance("EMP001", today, attendance.StatusPresent)
		insertAttendance("EMP002", today, attendance.StatusAbsent)
		insertAttendance("EMP001", today.AddDate(0, 0, -1), attendance.StatusPresent)

		employees, err := repo.CountEmployees()
		Expect(err).NotTo(HaveOccurred())
		Expect(employees).To(Equal(int64(2)))

		records, err := repo.CountAttendance()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(Equal(int64(3)))
	})

	It("counts today's records by status", func() {
		insertEmployee("EMP001", "Jane Doe")
		insertEmployee("EMP002", "John Smith")

		today := attendance.Today()
		insertAttendance("EMP001", today, attendance.StatusPresent)
		insertAttendance("EMP002", today, attendance.StatusAbsent)
		insertAttendance("EMP001", today.AddDate(0, 0, -1), attendance.StatusPresent)

		present, err := repo.CountAttendanceOn(today, attendance.StatusPresent)
		Expect(err).NotTo(HaveOccurred())
		Expect(present).To(Equal(int64(1)))

		absent, err := repo.CountAttendanceOn(today, attendance.StatusAbsent)
		Expect(err).NotTo(HaveOccurred())
		Expect(absent).To(Equal(int64(1)))
	})
})
