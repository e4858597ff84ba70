package rest

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-lite/internal/attendance"
	"github.com/frahmantamala/hrms-lite/internal/dashboard"
	"github.com/frahmantamala/hrms-lite/internal/employee"
	"github.com/frahmantamala/hrms-lite/internal/transport/middleware"
	"github.com/frahmantamala/hrms-lite/internal/transport/swagger"
)

const apiVersion = "1.0.0"

// RegisterAllRoutes wires middleware, docs and the API surface onto the
// router. The API is mounted under /api/v1.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	employeeHandler *employee.Handler,
	attendanceHandler *attendance.Handler,
	dashboardHandler *dashboard.Handler,
	allowedOrigins []string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "HRMS Lite API",
			"version": apiVersion,
			"status":  "running",
		})
	})
	router.Get("/health", healthHandler.healthCheckHandler)

	// OpenAPI spec and Swagger UI at root, outside the API prefix
	router.Get("/openapi.yml", swagger.SpecHandler("./api/openapi.yml"))
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", healthHandler.pingHandler)

		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/", employeeHandler.GetEmployees)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
			})
		}

		if attendanceHandler != nil {
			r.Route("/attendance", func(ar chi.Router) {
				ar.Post("/", attendanceHandler.MarkAttendance)
				ar.Get("/", attendanceHandler.GetAttendance)
				ar.Get("/employee/{id}/summary", attendanceHandler.GetEmployeeSummary)
			})
		}

		if dashboardHandler != nil {
			r.Get("/dashboard/stats", dashboardHandler.GetStats)
		}
	})
}
