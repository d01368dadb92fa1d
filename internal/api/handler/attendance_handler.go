package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/api/metrics"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// AttendanceHandler handles HTTP requests for attendance records.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type recordAttendanceRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required"`
}

// Record handles POST /api/attendance.
//
// @Summary      Record an attendance mark
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordAttendanceRequest  true  "Attendance mark"
// @Success      201   {object}  domain.Attendance
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Record(c echo.Context) error {
	var req recordAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.RecordAttendanceInput{
		EmployeeID: req.EmployeeID,
		Status:     req.Status,
	}
	if req.Date != "" {
		date, _ := time.Parse(dateLayout, req.Date)
		in.Date = date
	}

	att, err := h.service.Record(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.AttendanceRecordedTotal.WithLabelValues(string(att.Status)).Inc()
	return c.JSON(http.StatusCreated, att)
}

// ListByEmployee handles GET /api/attendance/employee/:id with an optional
// from/to date range.
//
// @Summary      List attendance for an employee
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true   "Employee id"
// @Param        from  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        to    query     string  false  "Range end (YYYY-MM-DD)"
// @Success      200   {array}   domain.Attendance
// @Failure      404   {object}  map[string]string
// @Router       /api/attendance/employee/{id} [get]
func (h *AttendanceHandler) ListByEmployee(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must match format YYYY-MM-DD")
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must match format YYYY-MM-DD")
	}

	records, err := h.service.ListByEmployee(c.Request().Context(), c.Param("id"), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
