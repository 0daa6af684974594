package handler

import (
	"strconv"

	"github.com/deppfellow/employee-api/internal/model"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate applies the shape rules declared on request structs. One
// instance for the package; validator instances cache struct metadata and
// are safe for concurrent use.
var validate = validator.New()

// ListEmployeesRequest carries no input; GET /employees takes none.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}

// GetEmployeeRequest identifies a single employee by path param.
type GetEmployeeRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *GetEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// CreateEmployeeRequest is the POST /employees body. No id: identifiers
// are assigned by the repository, never by clients. Required-ness of the
// fields is a business rule and belongs to the service; only shape limits
// are enforced here.
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"max=255"`
	Department string `json:"department" validate:"max=255"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateEmployeeRequest is the PUT /employees/:id body plus path param.
type UpdateEmployeeRequest struct {
	ID         int64  `param:"id" validate:"gt=0"`
	Name       string `json:"name" validate:"max=255"`
	Department string `json:"department" validate:"max=255"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteEmployeeRequest identifies the employee to remove.
type DeleteEmployeeRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// EmployeeHandler exposes the employee CRUD endpoints.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// List returns all employees in creation order.
func (h *EmployeeHandler) List(c echo.Context, req *ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.GetAllEmployees(c.Request().Context())
}

// Get returns a single employee by id.
func (h *EmployeeHandler) Get(c echo.Context, req *GetEmployeeRequest) (model.Employee, error) {
	return h.employees.GetEmployee(c.Request().Context(), req.ID)
}

// Create stores a new employee and returns it with its assigned id.
// The Location header points at the created resource.
func (h *EmployeeHandler) Create(c echo.Context, req *CreateEmployeeRequest) (model.Employee, error) {
	created, err := h.employees.SaveEmployee(c.Request().Context(), model.Employee{
		Name:       req.Name,
		Department: req.Department,
	})
	if err != nil {
		return model.Employee{}, err
	}

	c.Response().Header().Set("Location", "/employees/"+strconv.FormatInt(created.ID, 10))

	return created, nil
}

// Update replaces the employee record for the given id.
func (h *EmployeeHandler) Update(c echo.Context, req *UpdateEmployeeRequest) (model.Employee, error) {
	return h.employees.UpdateEmployee(c.Request().Context(), req.ID, model.Employee{
		Name:       req.Name,
		Department: req.Department,
	})
}

// Delete removes the employee record for the given id.
func (h *EmployeeHandler) Delete(c echo.Context, req *DeleteEmployeeRequest) error {
	return h.employees.DeleteEmployee(c.Request().Context(), req.ID)
}
