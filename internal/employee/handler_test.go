package employee_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/hrms-lite/internal/core/datamodel/employee"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	employeePostgres "github.com/frahmantamala/hrms-lite/internal/employee/postgres"
	"github.com/frahmantamala/hrms-lite/internal/transport"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *employee.Handler
		router  chi.Router
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Attendance{})
		Expect(err).NotTo(HaveOccurred())

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = employee.NewHandler(baseHandler, service)

		router = chi.NewRouter()
		router.Post("/employees", handler.CreateEmployee)
		router.Get("/employees", handler.GetEmployees)
		router.Get("/employees/{id}", handler.GetEmployee)
		router.Delete("/employees/{id}", handler.DeleteEmployee)
	})

	It("creates an employee and returns it with 201", func() {
		body := `{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane.doe@example.com","department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var created employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.EmployeeID).To(Equal("EMP001"))
		Expect(created.CreatedAt).NotTo(BeZero())
	})

	It("returns 422 with a detail message for an invalid payload", func() {
		body := `{"employee_id":"EMP001","full_name":"  ","email":"jane.doe@example.com","department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

		var response map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response).To(HaveKey("detail"))
	})

	It("returns 400 for a duplicate employee id", func() {
		body := `{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane.doe@example.com","department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		router.ServeHTTP(httptest.NewRecorder(), req)

		dup := `{"employee_id":"EMP001","full_name":"John Smith","email":"john.smith@example.com","department":"Finance"}`
		req = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(dup))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("lists employees as a JSON array", func() {
		body := `{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane.doe@example.com","department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		router.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var employees []employee.Employee
		Expect(json.NewDecoder(w.Body).Decode(&employees)).To(Succeed())
		Expect(employees).To(HaveLen(1))
	})

	It("returns an empty array rather than null when no employees exist", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
	})

	It("returns 404 for an unknown employee id", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees/MISSING", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("deletes an employee and responds with 204", func() {
		body := `{"employee_id":"EMP001","full_name":"Jane Doe","email":"jane.doe@example.com","department":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		router.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodDelete, "/employees/EMP001", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		req = httptest.NewRequest(http.MethodGet, "/employees/EMP001", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
