package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	employeePostgres "github.com/frahmantamala/hrms-lite/internal/employee/postgres"
)

func TestEmployeePostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Postgres Suite")
}

var _ = Describe("Employee Repository", func() {
	var (
		db   *gorm.DB
		repo employee.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
	})

	Describe("Create", func() {
		It("persists a new employee", func() {
			emp := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			}
			Expect(repo.Create(emp)).To(Succeed())

			found, err := repo.GetByID("EMP001")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.FullName).To(Equal("Jane Doe"))
			Expect(found.CreatedAt).NotTo(BeZero())
		})

		It("fails on a duplicate employee id", func() {
			emp := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			}
			Expect(repo.Create(emp)).To(Succeed())

			dup := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "John Smith",
				Email:      "john.smith@example.com",
				Department: "Finance",
			}
			Expect(repo.Create(dup)).NotTo(Succeed())
		})

		It("fails on a duplicate email", func() {
			emp := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			}
			Expect(repo.Create(emp)).To(Succeed())

			dup := &employeeDatamodel.Employee{
				EmployeeID: "EMP002",
				FullName:   "John Smith",
				Email:      "jane.doe@example.com",
				Department: "Finance",
			}
			Expect(repo.Create(dup)).NotTo(Succeed())
		})
	})

	Describe("GetAll", func() {
		It("returns employees newest first", func() {
			older := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
				CreatedAt:  time.Now().Add(-time.Hour),
			}
			newer := &employeeDatamodel.Employee{
				EmployeeID: "EMP002",
				FullName:   "John Smith",
				Email:      "john.smith@example.com",
				Department: "Finance",
				CreatedAt:  time.Now(),
			}
			Expect(repo.Create(older)).To(Succeed())
			Expect(repo.Create(newer)).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].EmployeeID).To(Equal("EMP002"))
			Expect(all[1].EmployeeID).To(Equal("EMP001"))
		})

		It("returns an empty slice when no employees exist", func() {
			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})
	})

	Describe("GetByID", func() {
		It("returns nil without error when the employee does not exist", func() {
			found, err := repo.GetByID("MISSING")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("GetByEmail", func() {
		It("finds an employee by email", func() {
			emp := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			}
			Expect(repo.Create(emp)).To(Succeed())

			found, err := repo.GetByEmail("jane.doe@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.EmployeeID).To(Equal("EMP001"))
		})

		It("returns nil without error when no employee has the email", func() {
			found, err := repo.GetByEmail("nobody@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("removes the employee together with its attendance records", func() {
			emp := &employeeDatamodel.Employee{
				EmployeeID: "EMP001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			}
			Expect(repo.Create(emp)).To(Succeed())

			date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
			rec := &attendanceDatamodel.Attendance{
				EmployeeID: "EMP001",
				Date:       date,
				Status:     "Present",
				CreatedAt:  time.Now(),
			}
			Expect(db.Create(rec).Error).To(Succeed())

			Expect(repo.Delete("EMP001")).To(Succeed())

			found, err := repo.GetByID("EMP001")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			var count int64
			Expect(db.Model(&attendanceDatamodel.Attendance{}).
				Where("employee_id = ?", "EMP001").
				Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})
})
