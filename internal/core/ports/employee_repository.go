package ports

import (
	"context"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// EmployeeRepository defines the interface for employee persistence.
type EmployeeRepository interface {
	// FindPage returns one page of employees. A non-empty search term
	// filters by name, department, company role, or exact id.
	FindPage(ctx context.Context, search string, page, size int) (*domain.EmployeePage, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Employee, error)
	SearchByDepartment(ctx context.Context, department string) ([]*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
