package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmployeeRepository()

	first, err := repo.Create(ctx, model.Employee{Name: "John", Department: "IT"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Create(ctx, model.Employee{Name: "Jane", Department: "HR"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", found.Name)
	assert.Equal(t, "IT", found.Department)
}

func TestMemoryRepository_FindAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmployeeRepository()

	names := []string{"Alice", "Bob", "Carol"}
	for _, name := range names {
		_, err := repo.Create(ctx, model.Employee{Name: name, Department: "Eng"})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}

func TestMemoryRepository_FindAllEmptyStore(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemoryRepository_FindByIDUnknown(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	_, err := repo.FindByID(context.Background(), 999)

	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(999), notFound.ID)
}

func TestMemoryRepository_UpdateReplacesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmployeeRepository()

	created, err := repo.Create(ctx, model.Employee{Name: "John", Department: "IT"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.Employee{Name: "John", Department: "Platform"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Platform", updated.Department)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestMemoryRepository_UpdateUnknown(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	_, err := repo.Update(context.Background(), 42, model.Employee{Name: "X", Department: "Y"})

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMemoryRepository_DeleteRetiresID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmployeeRepository()

	created, err := repo.Create(ctx, model.Employee{Name: "John", Department: "IT"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	var notFound *errs.NotFoundError
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorAs(t, err, &notFound)

	// The deleted id must never come back.
	next, err := repo.Create(ctx, model.Employee{Name: "Jane", Department: "HR"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID)
}

func TestMemoryRepository_DeleteUnknown(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	var notFound *errs.NotFoundError
	assert.ErrorAs(t, repo.Delete(context.Background(), 7), &notFound)
}

func TestMemoryRepository_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	const n = 100

	ctx := context.Background()
	repo := NewMemoryEmployeeRepository()

	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Create(ctx, model.Employee{Name: "Worker", Department: "Ops"})
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, model.Employee{Name: "John", Department: "IT"})
	assert.ErrorIs(t, err, context.Canceled)
}
