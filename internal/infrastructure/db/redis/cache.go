package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peoplehub/employee-system/internal/api/metrics"
	"github.com/peoplehub/employee-system/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// EmployeeCache is a read-through cache for employee-by-id lookups.
// Key format: employee:<id>
type EmployeeCache struct {
	client *redis.Client
}

// NewEmployeeCache creates an EmployeeCache wrapping the given Redis client.
func NewEmployeeCache(client *redis.Client) *EmployeeCache {
	return &EmployeeCache{client: client}
}

// Get returns the cached employee, or nil on a miss.
func (c *EmployeeCache) Get(ctx context.Context, id string) (*domain.Employee, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		metrics.EmployeeCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var emp domain.Employee
	if err := json.Unmarshal(raw, &emp); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.EmployeeCacheTotal.WithLabelValues("hit").Inc()
	return &emp, nil
}

// Set stores the employee for cacheTTL.
func (c *EmployeeCache) Set(ctx context.Context, emp *domain.Employee) error {
	raw, err := json.Marshal(emp)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(emp.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after a mutation.
func (c *EmployeeCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *EmployeeCache) key(id string) string {
	return "employee:" + id
}
