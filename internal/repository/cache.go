package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/deppfellow/employee-api/internal/model"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cacheKeyAll    = "employees:all"
	cacheKeyPrefix = "employees:id:"

	// cacheTTL bounds staleness if an invalidation is ever missed.
	cacheTTL = 5 * time.Minute
)

// CachedEmployeeRepository is a read-through redis cache in front of
// another EmployeeRepository.
//
// Reads consult redis first and fall back to the inner store on a miss;
// every write delegates first, then invalidates the affected keys. Cache
// failures are logged and otherwise ignored: redis going away must never
// fail a request the inner store can serve.
type CachedEmployeeRepository struct {
	inner EmployeeRepository
	redis *redis.Client
	log   *zerolog.Logger
}

// NewCachedEmployeeRepository wraps inner with a redis cache.
func NewCachedEmployeeRepository(inner EmployeeRepository, redisClient *redis.Client, log *zerolog.Logger) *CachedEmployeeRepository {
	return &CachedEmployeeRepository{
		inner: inner,
		redis: redisClient,
		log:   log,
	}
}

// Create delegates and invalidates the list key.
func (r *CachedEmployeeRepository) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	created, err := r.inner.Create(ctx, employee)
	if err != nil {
		return model.Employee{}, err
	}

	r.invalidate(ctx, cacheKeyAll)
	return created, nil
}

// FindAll serves the list from cache when possible.
func (r *CachedEmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	if payload, err := r.redis.Get(ctx, cacheKeyAll).Bytes(); err == nil {
		var employees []model.Employee
		if err := json.Unmarshal(payload, &employees); err == nil {
			return employees, nil
		}
		// Corrupt entry: drop it and fall through to the inner store.
		r.invalidate(ctx, cacheKeyAll)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Str("key", cacheKeyAll).Msg("cache read failed")
	}

	employees, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, cacheKeyAll, employees)
	return employees, nil
}

// FindByID serves a single record from cache when possible.
func (r *CachedEmployeeRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	key := cacheKeyPrefix + strconv.FormatInt(id, 10)

	if payload, err := r.redis.Get(ctx, key).Bytes(); err == nil {
		var employee model.Employee
		if err := json.Unmarshal(payload, &employee); err == nil {
			return employee, nil
		}
		r.invalidate(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	employee, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return model.Employee{}, err
	}

	r.store(ctx, key, employee)
	return employee, nil
}

// Update delegates and invalidates both the record and the list keys.
func (r *CachedEmployeeRepository) Update(ctx context.Context, id int64, employee model.Employee) (model.Employee, error) {
	updated, err := r.inner.Update(ctx, id, employee)
	if err != nil {
		return model.Employee{}, err
	}

	r.invalidate(ctx, cacheKeyPrefix+strconv.FormatInt(id, 10), cacheKeyAll)
	return updated, nil
}

// Delete delegates and invalidates both the record and the list keys.
func (r *CachedEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, cacheKeyPrefix+strconv.FormatInt(id, 10), cacheKeyAll)
	return nil
}

func (r *CachedEmployeeRepository) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}

	if err := r.redis.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (r *CachedEmployeeRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.redis.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
