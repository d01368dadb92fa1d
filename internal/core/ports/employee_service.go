package ports

import (
	"context"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// ListEmployeesInput carries paging and filtering for the employee listing.
type ListEmployeesInput struct {
	Search string
	Page   int
	Size   int
}

// UpdateEmployeeInput carries the mutable fields of an employee record.
type UpdateEmployeeInput struct {
	Name       string
	Email      string
	Department string
}

type EmployeeService interface {
	List(ctx context.Context, in ListEmployeesInput) (*domain.EmployeePage, error)
	// Create persists the employee and, when a username is supplied,
	// auto-provisions a USER account with the default password. An
	// existing username or email skips provisioning without error.
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	Update(ctx context.Context, id string, in UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	// Search resolves a keyword by id first, then name, then department.
	Search(ctx context.Context, keyword string) ([]*domain.Employee, error)
}
