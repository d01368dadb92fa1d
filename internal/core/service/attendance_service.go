package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

// AttendanceService records and lists daily attendance marks.
type AttendanceService struct {
	repo      ports.AttendanceRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewAttendanceService(repo ports.AttendanceRepository, employees ports.EmployeeRepository, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, employees: employees, log: log}
}

// Record stores one attendance mark. The employee must exist and the status
// must parse; a zero date means today.
func (s *AttendanceService) Record(ctx context.Context, in ports.RecordAttendanceInput) (*domain.Attendance, error) {
	status, err := domain.ParseAttendanceStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if _, err := s.employees.FindByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	att, err := s.repo.Insert(ctx, &domain.Attendance{
		EmployeeID: in.EmployeeID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	s.log.Debug().Str("employee_id", in.EmployeeID).Str("status", string(status)).Msg("attendance recorded")
	return att, nil
}

func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) ([]*domain.Attendance, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.repo.FindByEmployee(ctx, employeeID, from, to)
}
