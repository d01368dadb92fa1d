package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is an HR record. It has no foreign key to User; the shared
// username is only used once, at creation time, to auto-provision an account.
type Employee struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Department    string    `json:"department"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	MaritalStatus string    `json:"maritalStatus,omitempty"`
	Education     string    `json:"education,omitempty"`
	CompanyRole   string    `json:"companyRole,omitempty"`
	Salary        float64   `json:"salary,omitempty"`
	Photo         string    `json:"photo,omitempty"`
	Username      string    `json:"username,omitempty"`
	JoinedDate    time.Time `json:"joinedDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EmployeePage is one page of a paged employee listing.
type EmployeePage struct {
	Content       []*Employee `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}
