package logging

import (
	"bytes"
	"testing"
	"time"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	l.Infof("config", "scale=%s", "2x")
	l.Errorf("fb", "open failed: %v", "no device")

	want := "2024-03-01T12:00:00Z [INFO] config: scale=2x\n" +
		"2024-03-01T12:00:00Z [ERROR] fb: open failed: no device\n"
	if got := buf.String(); got != want {
		t.Errorf("log output =\n%s\nwant\n%s", got, want)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("x", "ignored %d", 1)
	l.Errorf("x", "ignored %d", 2)
}
