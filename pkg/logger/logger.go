// Package logger provides the shop's structured, levelled logger built on
// log/slog.
//
// Handlers are chosen by environment: human-readable text in development,
// JSON in production. When MONGO_URI is configured an asynchronous MongoDB
// sink is fanned in alongside stdout so order activity can be queried later.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// request ID already attached, so every log line from a handler is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID, "total", total)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/lunarosa/shop/config"
)

var L *slog.Logger

// closers collected at Setup time, flushed by Shutdown.
var mongoSink *MongoHandler

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

// Setup rebuilds the logger after config.Load, attaching the MongoDB sink
// when one is configured. Call once from server boot; init() already set up
// a stdout-only logger for anything that logs earlier.
func Setup() {
	handler := baseHandler()

	if uri := config.MongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.MongoDB(), config.MongoLogCollection())
		if err != nil {
			L.Warn("mongo log sink disabled", "error", err)
		} else {
			mongoSink = mh
			handler = NewMultiHandler(handler, mh)
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Shutdown flushes and closes the MongoDB sink, if any.
func Shutdown() {
	if mongoSink != nil {
		mongoSink.Close()
		mongoSink = nil
	}
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		return slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		return slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger stored in ctx by the Logger middleware
// (pre-tagged with request_id), or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
