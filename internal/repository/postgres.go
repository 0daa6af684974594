package repository

import (
	"context"
	"database/sql"

	"github.com/deppfellow/employee-api/internal/database"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/model"
	"github.com/deppfellow/employee-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// PostgresEmployeeRepository stores employees in PostgreSQL.
//
// Identifier assignment is delegated to a BIGSERIAL column, which gives
// the same monotonic, never-reused guarantee as the memory store. Driver
// errors are classified by sqlerr before they leave this package.
type PostgresEmployeeRepository struct {
	db *database.Database
}

// NewPostgresEmployeeRepository wraps the shared pool in a repository.
func NewPostgresEmployeeRepository(db *database.Database) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

// Create inserts the employee and returns it with its assigned id.
func (r *PostgresEmployeeRepository) Create(ctx context.Context, employee model.Employee) (model.Employee, error) {
	const query = `
		INSERT INTO employees (name, department)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, employee.Name, employee.Department).Scan(&employee.ID)
	if err != nil {
		return model.Employee{}, sqlerr.Classify("employees.create", err)
	}

	return employee, nil
}

// FindAll returns all employees ordered by id, which matches insertion
// order since ids are serial.
func (r *PostgresEmployeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	const query = `
		SELECT id, name, department
		FROM employees
		ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, sqlerr.Classify("employees.find_all", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		var employee model.Employee
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Department); err != nil {
			return nil, sqlerr.Classify("employees.find_all", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, sqlerr.Classify("employees.find_all", err)
	}

	return employees, nil
}

// FindByID returns the employee with the given id.
func (r *PostgresEmployeeRepository) FindByID(ctx context.Context, id int64) (model.Employee, error) {
	const query = `
		SELECT id, name, department
		FROM employees
		WHERE id = $1`

	var employee model.Employee
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&employee.ID, &employee.Name, &employee.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, errs.NewNotFoundError("employee", id)
		}
		return model.Employee{}, sqlerr.Classify("employees.find_by_id", err)
	}

	return employee, nil
}

// Update replaces the record for id and returns the stored value.
func (r *PostgresEmployeeRepository) Update(ctx context.Context, id int64, employee model.Employee) (model.Employee, error) {
	const query = `
		UPDATE employees
		SET name = $2, department = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, department`

	var updated model.Employee
	err := r.db.Pool.QueryRow(ctx, query, id, employee.Name, employee.Department).
		Scan(&updated.ID, &updated.Name, &updated.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return model.Employee{}, errs.NewNotFoundError("employee", id)
		}
		return model.Employee{}, sqlerr.Classify("employees.update", err)
	}

	return updated, nil
}

// Delete removes the record for id. Serial ids are never recycled by
// Postgres, so the retirement guarantee holds here too.
func (r *PostgresEmployeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return sqlerr.Classify("employees.delete", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("employee", id)
	}

	return nil
}
