// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces when a
// license key is configured. Without a key every helper degrades to a
// plain zerolog setup.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/deppfellow/employee-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// A nil inner application means New Relic is disabled; callers must treat
// GetApplication() == nil as "no telemetry" and skip instrumentation.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config.
//
// When no license key is configured it returns a service with a nil
// application rather than an error, so the rest of the app wires up
// identically with telemetry on or off.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability

	if obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
	}

	if obs.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize New Relic: %w", err)
	}

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending telemetry, waiting at most timeout.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls != nil && ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application's main zerolog logger from config.
//
// Format "console" produces human-friendly output for local work; "json"
// is the default for log pipelines. When New Relic log forwarding is
// enabled the output writer is wrapped so log lines carry trace linking
// metadata.
func New(cfg *config.Config, loggerService *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		nrOut := zerologWriter.New(out, app)
		out = &nrOut
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span ids, so log lines can be correlated with distributed traces.
func WithTraceContext(l zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return l
	}

	md := txn.GetTraceMetadata()

	builder := l.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}

	return builder.Logger()
}

// NewPgxLogger builds the logger used for SQL query tracing in the local
// profile. Console output on stderr keeps query noise out of the main
// log stream.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto pgx tracelog levels.
// The returned int is cast to tracelog.LogLevel by the database package,
// keeping this package free of pgx imports.
//
// tracelog levels: 0=none 1=error 2=warn 3=info 4=debug 6=trace.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6
	case zerolog.DebugLevel:
		return 4
	case zerolog.InfoLevel:
		return 3
	case zerolog.WarnLevel:
		return 2
	case zerolog.ErrorLevel:
		return 1
	default:
		return 0
	}
}
