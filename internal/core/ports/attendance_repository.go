package ports

import (
	"context"
	"time"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// AttendanceRepository defines the interface for attendance persistence.
type AttendanceRepository interface {
	Insert(ctx context.Context, att *domain.Attendance) (*domain.Attendance, error)
	// FindByEmployee lists records for one employee, newest first. A nil
	// bound leaves that side of the date range open.
	FindByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]*domain.Attendance, error)
}
