package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cxykevin/bstack/config"
	"github.com/cxykevin/bstack/config/structs"
)

func resetConfig() {
	cfg := structs.BuildDefault(structs.Config{})
	config.GlobalConfig = &cfg
}

func TestRunDefaultScript(t *testing.T) {
	resetConfig()
	t.Setenv("BSTACK_SCRIPT", "")
	if err := run(context.Background()); err != nil {
		t.Fatalf("run error = %v", err)
	}
}

func TestRunScriptFromEnv(t *testing.T) {
	resetConfig()
	config.GlobalConfig.Stack.Strict = true

	path := filepath.Join(t.TempDir(), "overflow.expr")
	if err := os.WriteFile(path, []byte("pop()\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BSTACK_SCRIPT", path)
	if err := run(context.Background()); err == nil {
		t.Errorf("Expected strict pop on empty stack to fail")
	}
}

func TestRunInvalidCapacity(t *testing.T) {
	resetConfig()
	config.GlobalConfig.Stack.Capacity = 0
	t.Setenv("BSTACK_SCRIPT", "")
	if err := run(context.Background()); err == nil {
		t.Errorf("Expected error for zero capacity")
	}
}
