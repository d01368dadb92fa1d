package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/api/middleware"
	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

type stubEmployeeService struct {
	listFn          func(ctx context.Context, in ports.ListEmployeesInput) (*domain.EmployeePage, error)
	createFn        func(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
	getFn           func(ctx context.Context, id string) (*domain.Employee, error)
	getByUsernameFn func(ctx context.Context, username string) (*domain.Employee, error)
	updateFn        func(ctx context.Context, id string, in ports.UpdateEmployeeInput) (*domain.Employee, error)
	deleteFn        func(ctx context.Context, id string) error
	searchFn        func(ctx context.Context, keyword string) ([]*domain.Employee, error)
}

func (s *stubEmployeeService) List(ctx context.Context, in ports.ListEmployeesInput) (*domain.EmployeePage, error) {
	return s.listFn(ctx, in)
}

func (s *stubEmployeeService) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	return s.createFn(ctx, emp)
}

func (s *stubEmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubEmployeeService) Update(ctx context.Context, id string, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) Search(ctx context.Context, keyword string) ([]*domain.Employee, error) {
	return s.searchFn(ctx, keyword)
}

func TestEmployeeHandler_List_ParsesQueryParams(t *testing.T) {
	var got ports.ListEmployeesInput
	h := NewEmployeeHandler(&stubEmployeeService{
		listFn: func(_ context.Context, in ports.ListEmployeesInput) (*domain.EmployeePage, error) {
			got = in
			return &domain.EmployeePage{Content: []*domain.Employee{}, Number: in.Page, Size: in.Size}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/employees?search=dev&page=2&size=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Search != "dev" || got.Page != 2 || got.Size != 5 {
		t.Fatalf("query params not passed through: %+v", got)
	}

	body := decodeBody(t, rec)
	if _, ok := body["content"]; !ok {
		t.Fatalf("paged envelope missing content field: %v", body)
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		createFn: func(_ context.Context, emp *domain.Employee) (*domain.Employee, error) {
			if emp.Name != "Alice" || emp.Username != "alice" {
				t.Fatalf("unexpected employee: %+v", emp)
			}
			if emp.JoinedDate.Format("2006-01-02") != "2026-01-15" {
				t.Fatalf("joined date not parsed: %v", emp.JoinedDate)
			}
			out := *emp
			out.ID = "emp-1"
			return &out, nil
		},
	})

	payload := `{"name":"Alice","email":"alice@example.com","username":"alice","joinedDate":"2026-01-15"}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/employees", payload)
	if err := h.Create(c); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["id"] != "emp-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEmployeeHandler_Create_Validation(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		createFn: func(context.Context, *domain.Employee) (*domain.Employee, error) {
			t.Fatalf("service must not be called on a validation failure")
			return nil, nil
		},
	})

	for name, payload := range map[string]string{
		"missing name":  `{"email":"a@example.com"}`,
		"missing email": `{"name":"Alice"}`,
		"bad email":     `{"name":"Alice","email":"not-an-email"}`,
		"bad date":      `{"name":"Alice","email":"a@example.com","joinedDate":"15/01/2026"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/api/employees", payload)
			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected a 400, got %v", err)
			}
		})
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		getFn: func(context.Context, string) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	})

	c, _ := newJSONContext(t, http.MethodGet, "/api/employees/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound to propagate, got %v", err)
	}
}

func TestEmployeeHandler_Update(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		updateFn: func(_ context.Context, id string, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
			if id != "emp-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Employee{ID: id, Name: in.Name, Email: in.Email, Department: in.Department}, nil
		},
	})

	payload := `{"name":"Alice B","email":"alice@example.com","department":"Platform"}`
	c, rec := newJSONContext(t, http.MethodPut, "/api/employees/emp-1", payload)
	c.SetParamNames("id")
	c.SetParamValues("emp-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["department"] != "Platform" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	var deleted string
	h := NewEmployeeHandler(&stubEmployeeService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodDelete, "/api/employees/emp-1", "")
	c.SetParamNames("id")
	c.SetParamValues("emp-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "emp-1" {
		t.Fatalf("service called with wrong id: %s", deleted)
	}
}

func TestEmployeeHandler_Search(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		searchFn: func(_ context.Context, keyword string) ([]*domain.Employee, error) {
			if keyword != "engineering" {
				t.Fatalf("unexpected keyword: %s", keyword)
			}
			return []*domain.Employee{{ID: "emp-1", Name: "Alice"}}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/employees/search?keyword=engineering", "")
	if err := h.Search(c); err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var results []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(results) != 1 || results[0]["name"] != "Alice" {
		t.Fatalf("unexpected results: %v", results)
	}
}

func TestEmployeeHandler_Me(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		getByUsernameFn: func(_ context.Context, username string) (*domain.Employee, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &domain.Employee{ID: "emp-1", Username: "alice"}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/employees/me", "")
	c.Set(middleware.PrincipalKey, &domain.Principal{Username: "alice", Role: domain.RoleUser})

	if err := h.Me(c); err != nil {
		t.Fatalf("me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Me_Anonymous(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		getByUsernameFn: func(context.Context, string) (*domain.Employee, error) {
			t.Fatalf("service must not be called without a principal")
			return nil, nil
		},
	})

	c, _ := newJSONContext(t, http.MethodGet, "/api/employees/me", "")
	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected a 401, got %v", err)
	}
}

func TestEmployeeHandler_Profile(t *testing.T) {
	h := NewEmployeeHandler(&stubEmployeeService{
		getByUsernameFn: func(_ context.Context, username string) (*domain.Employee, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			return &domain.Employee{ID: "emp-1", Username: "alice"}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/employees/profile/alice", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
