package ideas

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fuse-labs/fuse/internal/branding"
)

// FilePath returns the path to the idea record file. It checks the
// FUSE_IDEAS_FILE environment variable first, then falls back to
// ~/.fuse_ideas.json.
func FilePath() (string, error) {
	if v := os.Getenv(branding.EnvVar("IDEAS_FILE")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.IdeasFile()), nil
}

// Load reads the full idea list. A missing file yields an empty list; a file
// that fails to parse is treated as starting fresh, with a warning.
func Load(log *slog.Logger) ([]string, error) {
	path, err := FilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading ideas file %s: %w", path, err)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		log.Warn("failed to parse ideas file, starting fresh", "path", path, "error", err)
		return []string{}, nil
	}
	return list, nil
}

// Save appends one idea and rewrites the whole file with 2-space indentation.
func Save(log *slog.Logger, idea string) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	list, err := Load(log)
	if err != nil {
		return err
	}
	list = append(list, idea)

	out, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ideas: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing ideas file %s: %w", path, err)
	}
	return nil
}
