package attendance

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	errors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/core/common/validation"
)

// MarkAttendanceDTO is the request payload for marking attendance. The same
// payload creates a record or refreshes the existing one for the day.
type MarkAttendanceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (dto *MarkAttendanceDTO) Normalize() {
	dto.EmployeeID = strings.TrimSpace(dto.EmployeeID)
	dto.Date = strings.TrimSpace(dto.Date)
}

// Validate checks the payload against today's date and returns the parsed
// calendar date on success.
func (dto *MarkAttendanceDTO) Validate(today time.Time) (time.Time, *errors.AppError) {
	validator := validation.NewValidator()
	validator.Field("employee_id", dto.EmployeeID).Required()
	validator.Field("date", dto.Date).Required()
	validator.Field("status", dto.Status).Required().OneOf(StatusPresent, StatusAbsent)
	if err := validator.Validate(); err != nil {
		return time.Time{}, err
	}

	date, err := ParseDate(dto.Date)
	if err != nil {
		return time.Time{}, errors.NewValidationFieldError("date",
			fmt.Sprintf("date must be in %s format", DateLayout), errors.ErrCodeInvalidDate)
	}

	dateValidator := validation.NewValidator()
	dateValidator.Field("date", date).NotFutureDate(today)
	if err := dateValidator.Validate(); err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// Filter holds the optional listing criteria; all present criteria are
// ANDed together.
type Filter struct {
	EmployeeID string
	OnDate     *time.Time
	StartDate  *time.Time
	EndDate    *time.Time
}

// FilterFromQuery parses listing criteria from query parameters. Both
// `on_date` and `date` name the exact-date filter; `on_date` wins when both
// are present.
func FilterFromQuery(query url.Values) (Filter, *errors.AppError) {
	var f Filter

	f.EmployeeID = strings.TrimSpace(query.Get("employee_id"))

	parse := func(param string) (*time.Time, *errors.AppError) {
		raw := strings.TrimSpace(query.Get(param))
		if raw == "" {
			return nil, nil
		}
		date, err := ParseDate(raw)
		if err != nil {
			return nil, errors.NewValidationFieldError(param,
				fmt.Sprintf("%s must be in %s format", param, DateLayout), errors.ErrCodeInvalidDate)
		}
		return &date, nil
	}

	onDate, appErr := parse("on_date")
	if appErr != nil {
		return f, appErr
	}
	if onDate == nil {
		if onDate, appErr = parse("date"); appErr != nil {
			return f, appErr
		}
	}
	f.OnDate = onDate

	if f.StartDate, appErr = parse("start_date"); appErr != nil {
		return f, appErr
	}
	if f.EndDate, appErr = parse("end_date"); appErr != nil {
		return f, appErr
	}

	return f, nil
}

type RecordResponse struct {
	ID                 int64     `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	Date               string    `json:"date"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	EmployeeName       string    `json:"employee_name,omitempty"`
	EmployeeDepartment string    `json:"employee_department,omitempty"`
}

func (r *Record) ToResponse() RecordResponse {
	return RecordResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		Date:               r.Date.Format(DateLayout),
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		EmployeeName:       r.EmployeeName,
		EmployeeDepartment: r.EmployeeDepartment,
	}
}

func ToResponseSlice(records []*Record) []RecordResponse {
	result := make([]RecordResponse, len(records))
	for i, r := range records {
		result[i] = r.ToResponse()
	}
	return result
}

// SummaryResponse is the per-employee attendance summary. Counts default to
// zero when the employee has no records.
type SummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalDays    int64  `json:"total_days"`
	PresentDays  int64  `json:"present_days"`
	AbsentDays   int64  `json:"absent_days"`
}
