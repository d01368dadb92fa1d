package ports

import (
	"context"
	"time"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// RecordAttendanceInput carries one attendance mark as submitted over HTTP.
type RecordAttendanceInput struct {
	EmployeeID string
	Date       time.Time
	Status     string
}

type AttendanceService interface {
	Record(ctx context.Context, in RecordAttendanceInput) (*domain.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]*domain.Attendance, error)
}
