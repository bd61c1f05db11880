package draft

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil) // restore default
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("section computed", "gridlines", 3)
	if !strings.Contains(buf.String(), "section computed") {
		t.Errorf("log output missing message: %q", buf.String())
	}
}
