package scaffold

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// cruftFiles are template assets the produced project does not need,
// relative to the project root.
var cruftFiles = []string{
	"src/App.css",
	"README.md",
	"src/assets/react.svg",
	"public/vite.svg",
}

var gitignoreEntries = []string{
	"node_modules",
	"*.log",
	"dist",
	".vit",
	"stats.html",
	".eslintcache",
}

var titlePattern = regexp.MustCompile(`<title>Vite \+ React</title>`)

// removeCruft deletes the template boilerplate. Best-effort: a missing file
// is skipped, any other error is logged as a warning and the run continues.
func (s *Scaffolder) removeCruft() {
	for _, path := range cruftFiles {
		err := os.Remove(path)
		switch {
		case err == nil:
		case os.IsNotExist(err):
			s.log.Debug("file does not exist, skipping", "path", path)
		default:
			s.log.Warn("failed to unlink file", "path", path, "error", err)
		}
	}
}

// writeGitignore overwrites .gitignore at the project root.
func (s *Scaffolder) writeGitignore() error {
	content := strings.Join(gitignoreEntries, "\n")
	if err := os.WriteFile(".gitignore", []byte(content), 0644); err != nil {
		s.log.Error("failed to write .gitignore", "error", err)
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// writeViteConfig rewrites vite.config.js with the plugin list. With the
// Tailwind option set, the entry stylesheet is replaced with a single import
// directive and two config lines are swapped for the Tailwind plugin.
func (s *Scaffolder) writeViteConfig() error {
	lines := []string{
		"import { defineConfig } from 'vite'",
		"import react from '@vitejs/plugin-react'",
		"",
		"export default defineConfig({",
		"  plugins: [",
		"    react(),",
		"",
		"  ]",
		"})",
	}

	if s.opts.Tailwind {
		if err := os.WriteFile("src/index.css", []byte("@import \"tailwindcss\";\n"), 0644); err != nil {
			s.log.Error("failed to update src/index.css", "error", err)
			return fmt.Errorf("writing src/index.css: %w", err)
		}
		lines[2] = "import tailwindcss from '@tailwindcss/vite'"
		lines[6] = "    tailwindcss(),"
	}

	if err := os.WriteFile("vite.config.js", []byte(strings.Join(lines, "\n")), 0644); err != nil {
		s.log.Error("failed to write vite.config.js", "error", err)
		return fmt.Errorf("writing vite.config.js: %w", err)
	}
	return nil
}

// patchMainJSX prepends the React import to the application entry file.
func (s *Scaffolder) patchMainJSX() error {
	const path = "src/main.jsx"
	jsx, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("failed to patch src/main.jsx", "error", err)
		return fmt.Errorf("reading %s: %w", path, err)
	}

	patched := append([]byte("import React from 'react';\n"), jsx...)
	if err := os.WriteFile(path, patched, 0644); err != nil {
		s.log.Error("failed to patch src/main.jsx", "error", err)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// patchIndexHTML replaces the template title with the project name. When the
// template title is absent the file is rewritten unchanged.
func (s *Scaffolder) patchIndexHTML() error {
	const path = "index.html"
	html, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("failed to update index.html", "error", err)
		return fmt.Errorf("reading %s: %w", path, err)
	}

	patched := titlePattern.ReplaceAllLiteralString(string(html), "<title>"+s.opts.Name+"</title>")
	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		s.log.Error("failed to update index.html", "error", err)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
