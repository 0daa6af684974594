package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/deppfellow/employee-api/internal/errs"
	"github.com/deppfellow/employee-api/internal/handler"
	"github.com/deppfellow/employee-api/internal/logger"
	"github.com/deppfellow/employee-api/internal/middleware"
	"github.com/deppfellow/employee-api/internal/model"
	"github.com/deppfellow/employee-api/internal/repository"
	"github.com/deppfellow/employee-api/internal/server"
	"github.com/deppfellow/employee-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full stack on the memory backend: no database,
// no redis, no telemetry. Each test builds its own instance so state and
// rate-limit buckets never leak between tests.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Storage:       config.StorageConfig{Backend: config.StorageBackendMemory},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Environment = "test"

	log := zerolog.Nop()

	loggerService, err := logger.NewLoggerService(cfg)
	require.NoError(t, err)

	s, err := server.New(cfg, &log, loggerService)
	require.NoError(t, err)

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	require.NoError(t, err)

	return New(s, handler.NewHandlers(s, services), middleware.NewMiddlewares(s))
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEmployee(t *testing.T, rec *httptest.ResponseRecorder) model.Employee {
	t.Helper()

	var employee model.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employee))
	return employee
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var envelope errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateThenList(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/employees", `{"name":"John","department":"IT"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/employees/1", rec.Header().Get("Location"))

	created := decodeEmployee(t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "John", created.Name)
	assert.Equal(t, "IT", created.Department)

	rec = do(e, http.MethodGet, "/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []model.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestListEmptyReturnsArray(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetUnknownEmployeeIs404(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/employees/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Contains(t, envelope.Message, "employee")
}

func TestGetNonNumericIDIs400(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMalformedBodyIs400(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/employees", `{"name": "John"`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "BAD_REQUEST", envelope.Code)

	// A decode failure must not create anything.
	rec = do(e, http.MethodGet, "/employees", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateMissingFieldsIs400WithFieldErrors(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/employees", `{"department":"IT"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotEmpty(t, envelope.Errors)
	assert.Equal(t, "name", envelope.Errors[0].Field)

	rec = do(e, http.MethodGet, "/employees", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUnknownRouteIs404Envelope(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "ROUTE_NOT_FOUND", envelope.Code)
}

func TestUpdateEmployee(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/employees", `{"name":"John","department":"IT"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPut, "/employees/1", `{"name":"John","department":"Platform"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeEmployee(t, rec)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Platform", updated.Department)

	rec = do(e, http.MethodGet, "/employees/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeEmployee(t, rec))
}

func TestUpdateUnknownEmployeeIs404(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPut, "/employees/42", `{"name":"X","department":"Y"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEmployee(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/employees", `{"name":"John","department":"IT"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodDelete, "/employees/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(e, http.MethodGet, "/employees/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Ids of deleted records are retired for good.
	rec = do(e, http.MethodPost, "/employees", `{"name":"Jane","department":"HR"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), decodeEmployee(t, rec).ID)
}

func TestDeleteUnknownEmployeeIs404(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodDelete, "/employees/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHelloRoutes(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/hello", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, World!", rec.Body.String())

	rec = do(e, http.MethodGet, "/greet", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test")
}

func TestStatusHealthyWithoutBackends(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
}

func TestResponsesCarryRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodGet, "/employees", "")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
