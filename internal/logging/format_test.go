package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestQuotedValue(t *testing.T) {
	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"plain string", slog.StringValue("Heat (1995)"), "Heat (1995)"},
		{"empty string", slog.StringValue(""), `""`},
		{"embedded quote", slog.StringValue(`say "hi"`), `"say \"hi\""`},
		{"list", slog.AnyValue([]string{"Drama", "Crime"}), "Drama, Crime"},
		{"error", slog.AnyValue(errors.New("tmdb search returned 500")), "tmdb search returned 500"},
		{"duration", slog.DurationValue(1234567 * time.Microsecond), "1.235s"},
		{"short duration", slog.DurationValue(250 * time.Microsecond), "250µs"},
		{"float", slog.Float64Value(7.25), "7.25"},
		{"int", slog.Int64Value(42), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quotedValue(tt.value); got != tt.want {
				t.Fatalf("quotedValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlainValueNeverQuotes(t *testing.T) {
	if got := plainValue(slog.StringValue("")); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := plainValue(slog.StringValue("enrich")); got != "enrich" {
		t.Fatalf("unexpected component %q", got)
	}
}

func TestJSONReplaceAttrConvertsDurations(t *testing.T) {
	attr := jsonReplaceAttr(nil, slog.Duration("elapsed", 1500*time.Millisecond))
	if attr.Key != "elapsed_ms" || attr.Value.Int64() != 1500 {
		t.Fatalf("unexpected attr %v", attr)
	}
	grouped := jsonReplaceAttr([]string{"g"}, slog.String(slog.MessageKey, "x"))
	if grouped.Key != slog.MessageKey {
		t.Fatalf("grouped keys must be left alone, got %q", grouped.Key)
	}
}
