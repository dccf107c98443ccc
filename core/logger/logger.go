package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	coreconfig "github.com/m3rciful/furnibot/core/config"
)

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex

	logClosers []io.Closer
	levelVar   slog.LevelVar

	debugSampler = newRatioSampler(1, 1)

	// L is the base logger shared by all components.
	// Before InitLogger runs it points at a plain stderr logger.
	L = slog.New(slog.NewTextHandler(os.Stderr, nil))

	// TG logs Telegram transport events.
	TG = Component("tg")
	// TWire logs Telegram wiring steps.
	TWire = Component("tg.wire")
	// SND logs the asynchronous outbound sender.
	SND = Component("tg.sender")
	// DB logs database events.
	DB = Component("db")
	// MIG logs database migration events.
	MIG = Component("db.migrate")
	// SEED logs reference data seeding.
	SEED = Component("db.seed")
	// SVCShop logs conversation engine activity.
	SVCShop = Component("service.shop")
	// SVCCatalog logs catalog client activity.
	SVCCatalog = Component("service.catalog")
	// HTTP logs the catalog service HTTP surface.
	HTTP = Component("http")
)

const (
	formatKV   = "kv"
	formatJSON = "json"
)

// InitLogger configures the global structured logger. It may be called only once.
func InitLogger(cfg *coreconfig.Config) error {
	var initErr error
	initOnce.Do(func() {
		level := selectLevel(cfg)
		levelVar.Set(level)

		if num, den, ok := parseRatio(loggingOf(cfg).DebugSample); ok {
			debugSampler.Set(num, den)
		}

		out, err := buildOutput(cfg)
		if err != nil {
			initErr = err
			return
		}

		opts := &slog.HandlerOptions{Level: &levelVar}
		var handler slog.Handler
		if selectFormat(cfg) == formatJSON {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}

		L = slog.New(handler)
		slog.SetDefault(L)
		wireComponents()
	})
	return initErr
}

func wireComponents() {
	TG = Component("tg")
	TWire = Component("tg.wire")
	SND = Component("tg.sender")
	DB = Component("db")
	MIG = Component("db.migrate")
	SEED = Component("db.seed")
	SVCShop = Component("service.shop")
	SVCCatalog = Component("service.catalog")
	HTTP = Component("http")
}

// Component returns a child logger tagged with a component name.
func Component(name string) *slog.Logger {
	return L.With("component", name)
}

// Shutdown flushes and closes any file outputs.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	var first error
	for _, c := range logClosers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	logClosers = nil
	return first
}

// ShouldSampleDebug reports whether a debug-level line passes the sampling ratio.
func ShouldSampleDebug() bool {
	if levelVar.Level() > slog.LevelDebug {
		return false
	}
	return debugSampler.Allow()
}

// LogEvent writes an event line enriched with request metadata from ctx.
func LogEvent(ctx context.Context, log *slog.Logger, level slog.Level, event string, attrs ...slog.Attr) {
	if ctx == nil {
		ctx = Background()
	}
	if log == nil {
		if fromCtx := LoggerFrom(ctx); fromCtx != nil {
			log = fromCtx
		} else {
			log = Component("app")
		}
	}
	out := attrs
	if rid := RIDFrom(ctx); rid != "" && !hasAttr(attrs, "rid") {
		out = append(out, slog.String("rid", rid))
	}
	if h := HandlerFrom(ctx); h != "" && !hasAttr(attrs, "handler") {
		out = append(out, slog.String("handler", h))
	}
	log.LogAttrs(ctx, level, event, out...)
}

// Debug logs a sampled debug event through the given component logger.
func Debug(ctx context.Context, log *slog.Logger, event string, attrs ...slog.Attr) {
	if !ShouldSampleDebug() {
		return
	}
	LogEvent(ctx, log, slog.LevelDebug, event, attrs...)
}

// Info logs an info event through the given component logger.
func Info(ctx context.Context, log *slog.Logger, event string, attrs ...slog.Attr) {
	LogEvent(ctx, log, slog.LevelInfo, event, attrs...)
}

// Warn logs a warning event through the given component logger.
func Warn(ctx context.Context, log *slog.Logger, event string, attrs ...slog.Attr) {
	LogEvent(ctx, log, slog.LevelWarn, event, attrs...)
}

// Error logs an error event through the given component logger.
func Error(ctx context.Context, log *slog.Logger, event string, attrs ...slog.Attr) {
	LogEvent(ctx, log, slog.LevelError, event, attrs...)
}

func hasAttr(attrs []slog.Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

func loggingOf(cfg *coreconfig.Config) coreconfig.LoggingConfig {
	if cfg == nil {
		return coreconfig.LoggingConfig{}
	}
	return cfg.Logging
}

func selectLevel(cfg *coreconfig.Config) slog.Level {
	switch strings.ToLower(strings.TrimSpace(loggingOf(cfg).Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func selectFormat(cfg *coreconfig.Config) string {
	f := strings.ToLower(strings.TrimSpace(loggingOf(cfg).Format))
	if f == formatJSON {
		return formatJSON
	}
	return formatKV
}

func buildOutput(cfg *coreconfig.Config) (io.Writer, error) {
	lc := loggingOf(cfg)
	if lc.Dir == "" || lc.BotFile == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(lc.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: create dir: %w", err)
	}
	path := filepath.Join(lc.Dir, lc.BotFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", path, err)
	}
	shutdownMu.Lock()
	logClosers = append(logClosers, f)
	shutdownMu.Unlock()
	return io.MultiWriter(os.Stdout, f), nil
}

func parseRatio(s string) (int, int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	var num, den int
	if _, err := fmt.Sscanf(s, "%d/%d", &num, &den); err != nil || den <= 0 || num < 0 {
		return 0, 0, false
	}
	return num, den, true
}
