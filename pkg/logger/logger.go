// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns the logger stored in a context, so every line written while
// a patch runs is tagged with the patch name:
//
//	ctx = logger.InjectLogger(ctx, logger.L.With("patch", name))
//	logger.WithCtx(ctx).Info("product saved", "sku", sku)
//	// → time=... level=INFO msg="product saved" patch=catalog/data/add_new_product sku=sample-product
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var L *slog.Logger

func init() {
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Init replaces the base logger. Production environments get JSON output
// for log aggregators, everything else gets human-readable text.
func Init(env string, level slog.Level) {
	L = New(os.Stderr, env, level)
	slog.SetDefault(L)
}

// New builds a logger for env writing to w without touching the globals.
func New(w io.Writer, env string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}

type ctxKey struct{}

// WithCtx returns the *slog.Logger stored in ctx by InjectLogger, or the
// base logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log into ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
