package logx

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_Line(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "clipboard read failed",
		Data: logrus.Fields{
			"component": "console",
			"attempt":   2,
		},
	}
	out, err := plainFormatter{}.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	got := string(out)
	want := "[2025-03-01T12:00:00Z] [WARNING] [console] clipboard read failed attempt=2\n"
	if got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}
}

func TestPlainFormatter_NoComponentNoFields(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Unix(0, 0).UTC(),
		Level:   logrus.InfoLevel,
		Message: "started",
	}
	out, err := plainFormatter{}.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.HasSuffix(string(out), "[INFO] started\n") {
		t.Fatalf("line=%q", out)
	}
}
