package employee

import (
	"strings"

	errors "github.com/frahmantamala/hrms-lite/internal"
	"github.com/frahmantamala/hrms-lite/internal/core/common/validation"
)

// CreateEmployeeDTO is the request payload for creating an employee.
type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Normalize strips leading/trailing whitespace; the trimmed values are the
// canonical stored values.
func (dto *CreateEmployeeDTO) Normalize() {
	dto.EmployeeID = strings.TrimSpace(dto.EmployeeID)
	dto.FullName = strings.TrimSpace(dto.FullName)
	dto.Email = strings.TrimSpace(dto.Email)
	dto.Department = strings.TrimSpace(dto.Department)
}

func (dto *CreateEmployeeDTO) Validate() *errors.AppError {
	validator := validation.NewValidator()
	validator.Field("employee_id", dto.EmployeeID).Required().MaxLength(50)
	validator.Field("full_name", dto.FullName).Required().MaxLength(100)
	validator.Field("email", dto.Email).Required().Email()
	validator.Field("department", dto.Department).Required().MaxLength(100)
	return validator.Validate()
}
