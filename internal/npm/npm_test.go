package npm

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewDefaults(t *testing.T) {
	c := New("", nil)
	if c.Bin != "npm" {
		t.Errorf("Bin = %q, want %q", c.Bin, "npm")
	}
	if c.log == nil {
		t.Error("log should default to slog.Default()")
	}
}

func TestRunMissingBinary(t *testing.T) {
	c := New("definitely-not-a-real-binary-fuse", discardLogger())
	if ok := c.Install(context.Background()); ok {
		t.Error("Install() = true for a binary that cannot be launched, want false")
	}
}

func TestRunNonzeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the false utility")
	}
	c := New("false", discardLogger())
	c.Stdout = io.Discard
	c.Stderr = io.Discard
	if ok := c.Install(context.Background()); ok {
		t.Error("Install() = true for a nonzero exit, want false")
	}
}

func TestRunSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the true utility")
	}
	c := New("true", discardLogger())
	c.Stdout = io.Discard
	c.Stderr = io.Discard
	if ok := c.CreateVite(context.Background(), "demo"); !ok {
		t.Error("CreateVite() = false for a zero exit, want true")
	}
	if ok := c.InstallDev(context.Background(), "gh-pages"); !ok {
		t.Error("InstallDev() = false for a zero exit, want true")
	}
}

func TestVersion(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a shell stub")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "npm-stub")
	script := "#!/bin/sh\necho 10.9.2\n"
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}

	c := New(stub, discardLogger())
	got, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if got != "10.9.2" {
		t.Errorf("Version() = %q, want %q", got, "10.9.2")
	}
}

func TestVersionMissingBinary(t *testing.T) {
	c := New("definitely-not-a-real-binary-fuse", discardLogger())
	if _, err := c.Version(context.Background()); err == nil {
		t.Error("Version() error = nil for a missing binary, want error")
	}
}
