package domain

import (
	"errors"
	"strings"
	"time"
)

// AttendanceStatus is a daily presence mark for an employee.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
)

var ErrInvalidAttendanceStatus = errors.New("invalid attendance status")

// ParseAttendanceStatus normalizes a status string once, at the boundary.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(AttendancePresent):
		return AttendancePresent, nil
	case string(AttendanceAbsent):
		return AttendanceAbsent, nil
	default:
		return "", ErrInvalidAttendanceStatus
	}
}

// Attendance records one employee's status for one calendar day.
type Attendance struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
}
