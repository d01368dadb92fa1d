package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/api/metrics"
	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Department    string  `json:"department"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	MaritalStatus string  `json:"maritalStatus"`
	Education     string  `json:"education"`
	CompanyRole   string  `json:"companyRole"`
	Salary        float64 `json:"salary"`
	Photo         string  `json:"photo"`
	Username      string  `json:"username"`
	JoinedDate    string  `json:"joinedDate" validate:"omitempty,datetime=2006-01-02"`
}

type updateEmployeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
}

// List handles GET /api/employees with optional search, page and size params.
//
// @Summary      List employees (paged)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Filter by name, department, company role or id"
// @Param        page    query     int     false  "Zero-based page number"
// @Param        size    query     int     false  "Page size"
// @Success      200     {object}  domain.EmployeePage
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	result, err := h.service.List(c.Request().Context(), ports.ListEmployeesInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Create handles POST /api/employees. Supplying a username auto-provisions a
// USER login account with the default password.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	emp := &domain.Employee{
		Name:          req.Name,
		Email:         req.Email,
		Department:    req.Department,
		Phone:         req.Phone,
		Address:       req.Address,
		MaritalStatus: req.MaritalStatus,
		Education:     req.Education,
		CompanyRole:   req.CompanyRole,
		Salary:        req.Salary,
		Photo:         req.Photo,
		Username:      req.Username,
	}
	if req.JoinedDate != "" {
		joined, _ := time.Parse("2006-01-02", req.JoinedDate)
		emp.JoinedDate = joined
	}

	created, err := h.service.Create(c.Request().Context(), emp)
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	emp, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Update handles PUT /api/employees/:id. Only name, email and department are
// mutable through this endpoint.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Mutable fields"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	emp, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /api/employees/search?keyword=. The keyword resolves by
// id first, then name, then department.
//
// @Summary      Search employees by keyword
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        keyword  query     string  true  "Search keyword"
// @Success      200      {array}   domain.Employee
// @Router       /api/employees/search [get]
func (h *EmployeeHandler) Search(c echo.Context) error {
	results, err := h.service.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Me handles GET /api/employees/me. It resolves the caller's own record via
// the authenticated principal, so it always requires a token.
//
// @Summary      Get the caller's own employee record
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Employee
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/me [get]
func (h *EmployeeHandler) Me(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	emp, err := h.service.GetByUsername(c.Request().Context(), principal.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

// Profile handles GET /api/employees/profile/:username — the record matching
// the caller's login name.
//
// @Summary      Get an employee by username
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Account username"
// @Success      200       {object}  domain.Employee
// @Failure      404       {object}  map[string]string
// @Router       /api/employees/profile/{username} [get]
func (h *EmployeeHandler) Profile(c echo.Context) error {
	emp, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}
