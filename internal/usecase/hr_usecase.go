package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

type CreateStaffInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
}

type UpdateStaffInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Position  *string `json:"position,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type CreateAttendanceInput struct {
	EmployeeEmail string `json:"employee_email" validate:"required,email"`
	EntryTime     string `json:"entry_time" validate:"required"`
	ExitTime      string `json:"exit_time"`
	Date          string `json:"date" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=present absent late leave"`
	Notes         string `json:"notes"`
}

type UpdateAttendanceInput struct {
	EntryTime *string `json:"entry_time,omitempty"`
	ExitTime  *string `json:"exit_time,omitempty"`
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type CreateContractInput struct {
	EmployeeEmail string `json:"employee_email" validate:"required,email"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date"`
	Terms         string `json:"terms"`
	Salary        string `json:"salary" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=active inactive terminated"`
}

type UpdateContractInput struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Terms     *string `json:"terms,omitempty"`
	Salary    *string `json:"salary,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// HRUsecase is the resource store for staff, attendances and contracts.
type HRUsecase interface {
	FetchStaff(ctx context.Context) ([]entity.Employee, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Employee, error)
	UpdateStaff(ctx context.Context, id int64, input *UpdateStaffInput) (*entity.Employee, error)
	DeleteStaff(ctx context.Context, id int64) error

	FetchAttendances(ctx context.Context) ([]entity.Attendance, error)
	CreateAttendance(ctx context.Context, input *CreateAttendanceInput) (*entity.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, input *UpdateAttendanceInput) (*entity.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error

	FetchContracts(ctx context.Context) ([]entity.Contract, error)
	CreateContract(ctx context.Context, input *CreateContractInput) (*entity.Contract, error)
	UpdateContract(ctx context.Context, id int64, input *UpdateContractInput) (*entity.Contract, error)
	DeleteContract(ctx context.Context, id int64) error

	Staff() []entity.Employee
	Attendances() []entity.Attendance
	Contracts() []entity.Contract

	Loading() bool
	LastError() string
}
