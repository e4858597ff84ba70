package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM attendance").Error; err != nil {
				log.Fatalf("failed to clear attendance: %v", err)
			}
			if err := db.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		employees := []*employeeDatamodel.Employee{
			{EmployeeID: "EMP001", FullName: "Fadhil Rahman", Email: "fadhil@mail.com", Department: "Engineering", CreatedAt: time.Now()},
			{EmployeeID: "EMP002", FullName: "Padil Pratama", Email: "padil@mail.com", Department: "Finance", CreatedAt: time.Now()},
			{EmployeeID: "EMP003", FullName: "Sari Dewi", Email: "sari@mail.com", Department: "Human Resources", CreatedAt: time.Now()},
		}

		for _, emp := range employees {
			err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(emp).Error
			if err != nil {
				log.Fatalf("failed to seed employee %s: %v", emp.EmployeeID, err)
			}
			fmt.Println("Seeded employee:", emp.EmployeeID)
		}

		today := attendance.Today()
		records := []*attendanceDatamodel.Attendance{
			{EmployeeID: "EMP001", Date: today, Status: attendance.StatusPresent, CreatedAt: time.Now()},
			{EmployeeID: "EMP002", Date: today, Status: attendance.StatusPresent, CreatedAt: time.Now()},
			{EmployeeID: "EMP003", Date: today, Status: attendance.StatusAbsent, CreatedAt: time.Now()},
			{EmployeeID: "EMP001", Date: today.AddDate(0, 0, -1), Status: attendance.StatusAbsent, CreatedAt: time.Now()},
			{EmployeeID: "EMP002", Date: today.AddDate(0, 0, -1), Status: attendance.StatusPresent, CreatedAt: time.Now()},
		}

		for _, rec := range records {
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "created_at"}),
			}).Create(rec).Error
			if err != nil {
				log.Fatalf("failed to seed attendance for %s: %v", rec.EmployeeID, err)
			}
		}
		fmt.Println("Seeded attendance records:", len(records))
	},
}
