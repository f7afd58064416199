package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// jsonKeys shortens slog's built-in keys for log shippers.
var jsonKeys = map[string]string{
	slog.TimeKey:    "ts",
	slog.LevelKey:   "level",
	slog.MessageKey: "msg",
	slog.SourceKey:  "caller",
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: jsonReplaceAttr,
	})
}

func jsonReplaceAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	if short, ok := jsonKeys[attr.Key]; ok {
		attr.Key = short
	}
	switch v := attr.Value.Any().(type) {
	case time.Time:
		attr.Value = slog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case slog.Level:
		attr.Value = slog.StringValue(strings.ToLower(v.String()))
	case *slog.Source:
		if v != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(v.File), v.Line))
		}
	case time.Duration:
		// Durations go out as milliseconds so dashboards can aggregate them.
		attr.Key += "_ms"
		attr.Value = slog.Int64Value(v.Milliseconds())
	}
	return attr
}
