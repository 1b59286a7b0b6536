package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/domain/timesheet"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/validator"
)

type CreateTimesheetEntryRequest struct {
	Name       string          `json:"name" validate:"required"`
	Date       time.Time       `json:"date"`
	ProjectID  string          `json:"project_id"`
	TaskID     string          `json:"task_id"`
	SOLineID   string          `json:"so_line_id"`
	EmployeeID string          `json:"employee_id"`
	UnitAmount decimal.Decimal `json:"unit_amount"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *CreateTimesheetEntryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTimesheetEntryRequest) ToEntry(ctx context.Context) *timesheet.Entry {
	date := r.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &timesheet.Entry{
		ID:         types.GenerateUUIDWithPrefix(types.UUIDPrefixTimesheetEntry),
		Name:       r.Name,
		Date:       date,
		ProjectID:  r.ProjectID,
		TaskID:     r.TaskID,
		SOLineID:   r.SOLineID,
		EmployeeID: r.EmployeeID,
		UnitAmount: r.UnitAmount,
		Amount:     r.Amount,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}
}

type TimesheetEntryResponse struct {
	*timesheet.Entry
}
