package ideas

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fuse-labs/fuse/internal/branding"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setIdeasFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ideas.json")
	t.Setenv(branding.EnvVar("IDEAS_FILE"), path)
	return path
}

func TestLoadMissingFile(t *testing.T) {
	setIdeasFile(t)

	list, err := Load(testLogger())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Load() = %v, want empty list", list)
	}
}

func TestLoadCorruptFileStartsFresh(t *testing.T) {
	path := setIdeasFile(t)
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	list, err := Load(testLogger())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Load() = %v, want empty list for corrupt file", list)
	}
}

func TestSaveAppends(t *testing.T) {
	path := setIdeasFile(t)
	log := testLogger()

	if err := Save(log, "todo app"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := Save(log, "todo app"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := Save(log, "recipe site"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	list, err := Load(log)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// No deduplication: order and repeats are preserved.
	want := []string{"todo app", "todo app", "recipe site"}
	if len(list) != len(want) {
		t.Fatalf("Load() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("list[%d] = %q, want %q", i, list[i], want[i])
		}
	}

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "  \"todo app\"") {
		t.Error("ideas file is not written with 2-space indentation")
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv(branding.EnvVar("IDEAS_FILE"), "/tmp/custom-ideas.json")
	path, err := FilePath()
	if err != nil {
		t.Fatalf("FilePath() error: %v", err)
	}
	if path != "/tmp/custom-ideas.json" {
		t.Errorf("FilePath() = %q, want env override", path)
	}
}
