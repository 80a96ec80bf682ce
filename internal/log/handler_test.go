package log

import (
	"bytes"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestNewHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	loc := &url.URL{Scheme: "https", Host: "example.com", Path: "/a"}
	date := time.Date(1994, 11, 6, 9, 49, 37, 0, time.FixedZone("CET", 3600))
	logger.Debug("fields",
		"location", loc,
		"date", date,
		"value", FmtValue([]string{"a"}, false),
		"error", errors.New("boom"),
	)

	out := buf.String()
	for _, s := range []string{
		"location=https://example.com/a",
		`date="Sun, 06 Nov 1994 08:49:37 GMT"`,
		"value=[a]",
		"error.message=boom",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("log output %q does not contain %q", out, s)
		}
	}
}
