package logger

import (
	"context"
	"strings"
	"testing"

	"log/slog"
)

func TestBuildRID(t *testing.T) {
	rid := BuildRID(42, 9, 7)
	if rid != "u42-c9-s7" {
		t.Fatalf("unexpected rid: %s", rid)
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)
	ctx = WithHandler(ctx, "items")

	if got := RIDFrom(ctx); got != "rid-123" {
		t.Fatalf("rid = %s", got)
	}
	if got := UpdateIDFrom(ctx); got != 42 {
		t.Fatalf("update_id = %d", got)
	}
	if got := UserIDFrom(ctx); got != 7 {
		t.Fatalf("user_id = %d", got)
	}
	if got := ChatIDFrom(ctx); got != 9 {
		t.Fatalf("chat_id = %d", got)
	}
	if got := HandlerFrom(ctx); got != "items" {
		t.Fatalf("handler = %s", got)
	}
}

func TestLogEventAppendsRID(t *testing.T) {
	rec := &recordingHandler{}
	log := slog.New(rec).With("component", "tg")
	ctx := WithRID(Background(), "rid-ev")

	LogEvent(ctx, log, slog.LevelInfo, "handler.handled", slog.String("status", "ok"))

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.records))
	}
	r := rec.records[0]
	if r.Message != "handler.handled" {
		t.Fatalf("message = %s", r.Message)
	}
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "rid" && a.Value.String() == "rid-ev" {
			found = true
			return false
		}
		return true
	})
	if !found {
		t.Fatal("rid attr missing")
	}
}

func TestSanitizeLimit(t *testing.T) {
	got := SanitizeLimit("line\nbreak\x01", 64)
	if strings.ContainsAny(got, "\n\x01") {
		t.Fatalf("control chars survived: %q", got)
	}
	long := strings.Repeat("a", 20)
	if got := SanitizeLimit(long, 5); len([]rune(got)) != 6 {
		t.Fatalf("truncation failed: %q", got)
	}
}

func TestSummarizeStrings(t *testing.T) {
	preview, truncated := SummarizeStrings([]string{"a", "b", "c"}, 2)
	if preview != "a,b" || !truncated {
		t.Fatalf("got %q truncated=%v", preview, truncated)
	}
	preview, truncated = SummarizeStrings([]string{"a"}, 2)
	if preview != "a" || truncated {
		t.Fatalf("got %q truncated=%v", preview, truncated)
	}
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler(1, 4)
	allowed := 0
	for i := 0; i < 40; i++ {
		if s.Allow() {
			allowed++
		}
	}
	if allowed != 10 {
		t.Fatalf("allowed %d of 40, expected 10", allowed)
	}
}

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }
