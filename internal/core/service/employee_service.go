package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-system/internal/core/domain"
	"github.com/peoplehub/employee-system/internal/core/ports"
)

const defaultPageSize = 20

// EmployeeCache abstracts the read cache for employee-by-id lookups (Redis).
// A nil, nil return is a miss. Cache failures are never fatal.
type EmployeeCache interface {
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Set(ctx context.Context, emp *domain.Employee) error
	Invalidate(ctx context.Context, id string) error
}

// EmployeeConfig carries the provisioning policy for new employees.
type EmployeeConfig struct {
	// DefaultPassword is assigned to auto-provisioned accounts.
	DefaultPassword string
	Passwords       PasswordPolicy
}

// EmployeeService implements employee CRUD, keyword search, paged listing and
// the account auto-provisioning side effect.
type EmployeeService struct {
	repo  ports.EmployeeRepository
	users ports.UserRepository
	cache EmployeeCache
	cfg   EmployeeConfig
	log   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, users ports.UserRepository, cache EmployeeCache, cfg EmployeeConfig, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, users: users, cache: cache, cfg: cfg, log: log}
}

func (s *EmployeeService) List(ctx context.Context, in ports.ListEmployeesInput) (*domain.EmployeePage, error) {
	if in.Page < 0 {
		in.Page = 0
	}
	if in.Size <= 0 {
		in.Size = defaultPageSize
	}
	return s.repo.FindPage(ctx, strings.TrimSpace(in.Search), in.Page, in.Size)
}

// Create persists the employee and, when a username is supplied, provisions a
// USER account with the default password, syncing the employee's email onto
// it. An already-taken username or email skips provisioning silently.
func (s *EmployeeService) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	now := time.Now().UTC()
	emp.CreatedAt = now
	if emp.JoinedDate.IsZero() {
		emp.JoinedDate = now.Truncate(24 * time.Hour)
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	if emp.Username != "" {
		if err := s.provisionAccount(ctx, created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *EmployeeService) provisionAccount(ctx context.Context, emp *domain.Employee) error {
	if taken, err := s.accountTaken(ctx, emp); err != nil {
		return err
	} else if taken {
		s.log.Info().
			Str("username", emp.Username).
			Str("employee_id", emp.ID).
			Msg("skipping account provisioning: username or email already exists")
		return nil
	}

	password, err := s.cfg.Passwords.Store(s.cfg.DefaultPassword)
	if err != nil {
		return fmt.Errorf("provision account: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:  emp.Username,
		Email:     emp.Email,
		Password:  password,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent create; same outcome as the
		// pre-check, so skip rather than fail the employee creation.
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Info().Str("username", emp.Username).Msg("skipping account provisioning: duplicate on insert")
			return nil
		}
		return fmt.Errorf("provision account: %w", err)
	}

	s.log.Info().Str("username", emp.Username).Msg("user account provisioned")
	return nil
}

func (s *EmployeeService) accountTaken(ctx context.Context, emp *domain.Employee) (bool, error) {
	if _, err := s.users.FindByUsername(ctx, emp.Username); err == nil {
		return true, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, fmt.Errorf("provision account: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, emp.Email); err == nil {
		return true, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, fmt.Errorf("provision account: %w", err)
	}

	return false, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("employee_id", id).Msg("employee cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, emp); err != nil {
			s.log.Warn().Err(err).Str("employee_id", id).Msg("employee cache write failed")
		}
	}
	return emp, nil
}

func (s *EmployeeService) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Department = in.Department

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	s.invalidate(ctx, id)
	return existing, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *EmployeeService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("employee_id", id).Msg("employee cache invalidation failed")
	}
}

// Search resolves a keyword through a fallback chain: an exact id match wins,
// then a name substring match, then a department substring match.
func (s *EmployeeService) Search(ctx context.Context, keyword string) ([]*domain.Employee, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*domain.Employee{}, nil
	}

	if emp, err := s.repo.FindByID(ctx, keyword); err == nil {
		return []*domain.Employee{emp}, nil
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	byName, err := s.repo.SearchByName(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if len(byName) > 0 {
		return byName, nil
	}

	return s.repo.SearchByDepartment(ctx, keyword)
}
