package configutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	t.Setenv("BSTACK_TEST_DIR", "/opt/bstack")
	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", home + "/test"},
		{"/tmp/test", "/tmp/test"},
		{"$BSTACK_TEST_DIR/test", "/opt/bstack/test"},
	}

	for _, tt := range tests {
		got := ExpandPath(tt.input)
		if got != tt.expected {
			t.Errorf("ExpandPath(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("BSTACK_TEST_PATH", "")
	if got := Resolve("BSTACK_TEST_PATH", "/tmp/a.json"); got != "/tmp/a.json" {
		t.Errorf("Resolve fallback = %q", got)
	}
	t.Setenv("BSTACK_TEST_PATH", "/tmp/b.json")
	if got := Resolve("BSTACK_TEST_PATH", "/tmp/a.json"); got != "/tmp/b.json" {
		t.Errorf("Resolve env = %q", got)
	}
}

func TestEnsureParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.json")
	if err := EnsureParent(path); err != nil {
		t.Fatalf("EnsureParent error = %v", err)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("Expected directory %s to exist", filepath.Dir(path))
	}
}
