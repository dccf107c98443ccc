package logger

import (
	"strings"
	"sync/atomic"
	"time"
)

// RoundMS rounds a duration to whole milliseconds for compact log output.
func RoundMS(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}

// SanitizeLimit strips control characters and truncates to max runes.
func SanitizeLimit(s string, max int) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
	runes := []rune(s)
	if max > 0 && len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}

// SummarizeStrings joins up to max items and reports whether the list was truncated.
func SummarizeStrings(items []string, max int) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if max <= 0 || len(items) <= max {
		return strings.Join(items, ","), false
	}
	return strings.Join(items[:max], ","), true
}

// ratioSampler passes num out of every den calls.
type ratioSampler struct {
	num, den atomic.Int64
	counter  atomic.Int64
}

func newRatioSampler(num, den int) *ratioSampler {
	s := &ratioSampler{}
	s.Set(num, den)
	return s
}

func (s *ratioSampler) Set(num, den int) {
	if den <= 0 {
		den = 1
	}
	if num < 0 {
		num = 0
	}
	s.num.Store(int64(num))
	s.den.Store(int64(den))
}

func (s *ratioSampler) Allow() bool {
	den := s.den.Load()
	num := s.num.Load()
	if num >= den {
		return true
	}
	if num == 0 {
		return false
	}
	n := s.counter.Add(1)
	return (n-1)%den < num
}
