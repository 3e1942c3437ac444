package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

var sampleManifest = dedent.Dedent(`
	{
	  "name": "demo",
	  "private": true,
	  "version": "0.0.0",
	  "type": "module",
	  "scripts": {
	    "dev": "vite",
	    "build": "vite build",
	    "test": "jest"
	  },
	  "dependencies": {
	    "react": "^19.1.0"
	  }
	}
`)

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestLoadUnparseable(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "{not json")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable manifest")
	}
}

func TestSetScriptPreservesExistingEntries(t *testing.T) {
	path := writeManifest(t, t.TempDir(), sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	m.SetScript("predeploy", "npm run build")
	m.SetScript("deploy", "gh-pages -d dist")
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	saved, err := Load(path)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}

	scripts := saved.Scripts()
	want := map[string]string{
		"dev":       "vite",
		"build":     "vite build",
		"test":      "jest",
		"predeploy": "npm run build",
		"deploy":    "gh-pages -d dist",
	}
	if len(scripts) != len(want) {
		t.Errorf("got %d scripts %v, want %d", len(scripts), scripts, len(want))
	}
	for name, cmd := range want {
		if scripts[name] != cmd {
			t.Errorf("scripts[%q] = %q, want %q", name, scripts[name], cmd)
		}
	}

	// Untouched fields survive the round trip.
	if saved.Name() != "demo" {
		t.Errorf("Name() = %q, want %q", saved.Name(), "demo")
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), `"react": "^19.1.0"`) {
		t.Error("dependencies block was not preserved")
	}
}

func TestSaveIndentation(t *testing.T) {
	path := writeManifest(t, t.TempDir(), sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	raw, _ := os.ReadFile(path)
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		if indent%2 != 0 {
			t.Errorf("line %q has odd indentation %d", line, indent)
		}
	}
}

func TestSetScriptCreatesBlock(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `{"name": "bare"}`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	m.SetScript("deploy", "gh-pages -d dist")

	scripts := m.Scripts()
	if scripts["deploy"] != "gh-pages -d dist" {
		t.Errorf("scripts[deploy] = %q, want %q", scripts["deploy"], "gh-pages -d dist")
	}
}

func TestScriptsReturnsCopy(t *testing.T) {
	path := writeManifest(t, t.TempDir(), sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	scripts := m.Scripts()
	scripts["dev"] = "mutated"

	if m.Scripts()["dev"] != "vite" {
		t.Error("mutation of the returned map leaked into the manifest")
	}
}
