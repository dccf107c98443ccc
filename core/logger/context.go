package logger

import (
	"context"
	"fmt"
	"log/slog"
)

type ctxKey int

const (
	ridKey ctxKey = iota
	updateIDKey
	userIDKey
	chatIDKey
	loggerKey
	handlerKey
)

// Background returns the root context for log enrichment chains.
func Background() context.Context {
	return context.Background()
}

// BuildRID derives a request id from update, chat, and user identifiers.
func BuildRID(updateID int, chatID, userID int64) string {
	return fmt.Sprintf("u%d-c%d-s%d", updateID, chatID, userID)
}

// WithRID attaches a request id to the context.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ridKey, rid)
}

// RIDFrom returns the request id stored in ctx, if any.
func RIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(ridKey).(string)
	return rid
}

// WithUpdateMeta attaches Telegram update metadata to the context.
func WithUpdateMeta(ctx context.Context, updateID int, userID, chatID int64) context.Context {
	ctx = context.WithValue(ctx, updateIDKey, updateID)
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, chatIDKey, chatID)
}

// UpdateIDFrom returns the update id stored in ctx.
func UpdateIDFrom(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(updateIDKey).(int)
	return id
}

// UserIDFrom returns the user id stored in ctx.
func UserIDFrom(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// ChatIDFrom returns the chat id stored in ctx.
func ChatIDFrom(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(chatIDKey).(int64)
	return id
}

// WithLogger attaches a component logger to the context.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// LoggerFrom returns the component logger stored in ctx, or nil.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	log, _ := ctx.Value(loggerKey).(*slog.Logger)
	return log
}

// WithHandler attaches the handler name to the context.
func WithHandler(ctx context.Context, handler string) context.Context {
	return context.WithValue(ctx, handlerKey, handler)
}

// HandlerFrom returns the handler name stored in ctx, if any.
func HandlerFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	h, _ := ctx.Value(handlerKey).(string)
	return h
}
