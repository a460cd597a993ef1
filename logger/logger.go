package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
	LevelFatal   = slog.Level(12)
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

type Options struct {
	Level       slog.Level
	Format      string
	Output      io.Writer
	OTEL        bool
	ServiceName string
}

// ShutdownFunc flushes buffered records. It is a no-op unless OTEL is enabled.
type ShutdownFunc func(context.Context) error

// New builds a logger from opts. With OTEL enabled records are exported over
// OTLP/gRPC instead of being written to opts.Output.
func New(ctx context.Context, opts Options) (*slog.Logger, ShutdownFunc, error) {
	if opts.OTEL {
		return newOTEL(ctx, opts)
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	case FormatText, "":
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("unknown log format: %s", opts.Format)
	}

	return slog.New(handler), func(context.Context) error { return nil }, nil
}

func newOTEL(ctx context.Context, opts Options) (*slog.Logger, ShutdownFunc, error) {
	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "growth-projector"
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	handler := &levelHandler{
		level:   opts.Level,
		handler: otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(provider)),
	}

	return slog.New(handler), provider.Shutdown, nil
}

// levelHandler filters records below level before they reach the bridge.
type levelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithGroup(name)}
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}
