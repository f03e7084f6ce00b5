package performance

import (
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CreateMetricRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	Score        int     `json:"score"`
	Comments     *string `json:"comments,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	Achievements *string `json:"achievements,omitempty"`
}

func (r *CreateMetricRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid id",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "quarter",
			Message: "quarter must be between 1 and 4",
		})
	}
	if !validator.IsScoreInRange(r.Score) {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMetricRequest struct {
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	Score        int     `json:"score"`
	Comments     *string `json:"comments,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	Achievements *string `json:"achievements,omitempty"`
}

func (r *UpdateMetricRequest) Validate() error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}
	if r.Quarter < 1 || r.Quarter > 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "quarter",
			Message: "quarter must be between 1 and 4",
		})
	}
	if !validator.IsScoreInRange(r.Score) {
		errs = append(errs, validator.ValidationError{
			Field:   "score",
			Message: "score must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MetricResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	Score        int     `json:"score"`
	Comments     *string `json:"comments,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	Achievements *string `json:"achievements,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
