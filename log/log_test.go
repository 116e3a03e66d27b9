package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv(envLogName, path)

	Load()

	l := New("test-module")
	l.Info("test info message")
	l.Debug("multi\nline")
	l.Warn("test warn message")
	l.Error("test error message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"[INFO][log] log inited",
		"[INFO][test-module] test info message",
		"[DEBUG][test-module] multi\\nline",
		"[WARN][test-module] test warn message",
		"[ERROR][test-module] test error message",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}

	// Error 之前的日志应已写入
	if strings.Index(out, "test warn message") > strings.Index(out, "test error message") {
		t.Errorf("Expected queued logs to be flushed before error")
	}

	Shutdown()
	l.Info("after shutdown")
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "after shutdown") {
		t.Errorf("Expected logs after shutdown to be written synchronously")
	}
	if Dropped() != 0 {
		t.Errorf("Expected no dropped logs, got %d", Dropped())
	}
}
