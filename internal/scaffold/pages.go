package scaffold

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/fuse-labs/fuse/internal/manifest"
)

var defineConfigPattern = regexp.MustCompile(`defineConfig\(\s*\{`)

// SetupPages configures the project for GitHub Pages deployment: installs
// gh-pages as a dev dependency, wires predeploy/deploy scripts into
// package.json, and injects the base path into vite.config.js. Only the
// gh-pages install is fatal; a missing or unparseable manifest and a missing
// config file are logged and leave the run successful.
func (s *Scaffolder) SetupPages(ctx context.Context) error {
	if !s.pm.InstallDev(ctx, "gh-pages") {
		return fmt.Errorf("installing gh-pages: %w", ErrCommandFailed)
	}

	if _, err := os.Stat(manifest.FileName); err != nil {
		s.log.Error("package.json not found")
		return nil
	}

	m, err := manifest.Load(manifest.FileName)
	if err != nil {
		s.log.Error("failed to parse package.json", "error", err)
		return nil
	}

	m.SetScript("predeploy", "npm run build")
	m.SetScript("deploy", "gh-pages -d dist")
	if err := m.Save(); err != nil {
		s.log.Error("failed to rewrite package.json", "error", err)
		return fmt.Errorf("rewriting package.json: %w", err)
	}
	s.log.Info("updated package.json with predeploy and deploy scripts")

	if result, err := manifest.ValidateFile(manifest.FileName); err == nil && !result.Valid {
		for _, issue := range result.Issues {
			s.log.Warn("package.json validation issue", "path", issue.Path, "message", issue.Message)
		}
	}

	s.injectBasePath()
	return nil
}

// injectBasePath adds base: '/<name>', as the first property of the Vite
// config object. Applied at most once, anchored on the object-opening token.
func (s *Scaffolder) injectBasePath() {
	const path = "vite.config.js"

	config, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("vite.config.js not found; cannot set base property for GitHub Pages")
		} else {
			s.log.Error("failed to update vite.config.js", "error", err)
		}
		return
	}

	loc := defineConfigPattern.FindIndex(config)
	if loc != nil {
		injected := fmt.Sprintf("\n  base: '/%s',", s.opts.Name)
		patched := make([]byte, 0, len(config)+len(injected))
		patched = append(patched, config[:loc[1]]...)
		patched = append(patched, injected...)
		patched = append(patched, config[loc[1]:]...)
		config = patched
	}

	if err := os.WriteFile(path, config, 0644); err != nil {
		s.log.Error("failed to update vite.config.js", "error", err)
		return
	}
	s.log.Info("updated vite.config.js with base property for GitHub Pages")
}
