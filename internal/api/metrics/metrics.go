// Package metrics defines and registers all custom Prometheus metrics for the
// employee system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetRequestsTotal counts forgot-password requests.
// Label:
//   - result: "sent", "unknown_email", or "mail_error"
var PasswordResetRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests, by result.",
	},
	[]string{"result"},
)

// PasswordResetsCompletedTotal counts reset-phase exchanges.
// Label:
//   - result: "success", "invalid_token", or "expired_token"
var PasswordResetsCompletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_completed_total",
		Help:      "Total number of reset-phase token exchanges, by result.",
	},
	[]string{"result"},
)

// EmployeesCreatedTotal counts newly created employee records.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employee records created.",
	},
)

// AttendanceRecordedTotal counts attendance marks.
// Label:
//   - status: "PRESENT" or "ABSENT"
var AttendanceRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_recorded_total",
		Help:      "Total number of attendance marks recorded, by status.",
	},
	[]string{"status"},
)

// EmployeeCacheTotal counts employee cache lookups.
// Label:
//   - result: "hit" or "miss"
var EmployeeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_cache_total",
		Help:      "Total number of employee cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
