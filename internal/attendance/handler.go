package attendance

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-lite/internal/transport"
)

type ServiceAPI interface {
	MarkAttendance(dto MarkAttendanceDTO) (*Record, error)
	ListAttendance(f Filter) ([]*Record, error)
	EmployeeSummary(employeeID string) (*SummaryResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkAttendance: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.MarkAttendance(dto)
	if err != nil {
		h.Logger.Error("MarkAttendance: service error", "error", err,
			"employee_id", dto.EmployeeID, "date", dto.Date)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record.ToResponse())
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	filter, appErr := FilterFromQuery(r.URL.Query())
	if appErr != nil {
		h.Logger.Error("GetAttendance: invalid filter", "error", appErr)
		h.HandleServiceError(w, appErr)
		return
	}

	records, err := h.Service.ListAttendance(filter)
	if err != nil {
		h.Logger.Error("GetAttendance: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponseSlice(records))
}

func (h *Handler) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	summary, err := h.Service.EmployeeSummary(employeeID)
	if err != nil {
		h.Logger.Error("GetEmployeeSummary: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
