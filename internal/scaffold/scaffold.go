package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrCommandFailed is the signal for an external command that exited nonzero
// or could not be launched. Fatal wherever it surfaces.
var ErrCommandFailed = errors.New("external command failed")

// PackageManager is the subset of the npm client the scaffolder drives.
type PackageManager interface {
	CreateVite(ctx context.Context, name string) bool
	Install(ctx context.Context, pkgs ...string) bool
	InstallDev(ctx context.Context, pkgs ...string) bool
}

// Options are the invocation parameters for one run. Immutable for the
// run's duration.
type Options struct {
	Name     string // project name, used verbatim as directory name and in generated files
	Tailwind bool   // install Tailwind CSS and register its Vite plugin
	Lucide   bool   // install Lucide React
	Deploy   bool   // configure GitHub Pages deployment
}

// Scaffolder produces a working React project directory, or leaves the
// process in a clearly failed state with a reported reason. It changes the
// process working directory into the new project partway through and never
// changes it back; callers embedding it in a longer-lived process must
// isolate that.
type Scaffolder struct {
	log  *slog.Logger
	pm   PackageManager
	opts Options
}

// New returns a Scaffolder with a per-run logger.
func New(log *slog.Logger, pm PackageManager, opts Options) *Scaffolder {
	return &Scaffolder{log: log, pm: pm, opts: opts}
}

// Run executes the scaffold sequence strictly in order. Any returned error
// is fatal and aborts the remaining steps. Deployment configuration is a
// separate step; see SetupPages.
func (s *Scaffolder) Run(ctx context.Context) error {
	if err := s.standUp(ctx); err != nil {
		return err
	}
	s.removeCruft()
	if err := s.writeGitignore(); err != nil {
		return err
	}
	if err := s.writeViteConfig(); err != nil {
		return err
	}
	if err := s.patchMainJSX(); err != nil {
		return err
	}
	return s.patchIndexHTML()
}

// standUp generates the base project, enters it, and installs dependencies.
func (s *Scaffolder) standUp(ctx context.Context) error {
	if !s.pm.CreateVite(ctx, s.opts.Name) {
		return fmt.Errorf("initializing project: %w", ErrCommandFailed)
	}

	if err := os.Chdir(s.opts.Name); err != nil {
		s.log.Error("failed to change directory", "dir", s.opts.Name, "error", err)
		return fmt.Errorf("entering project directory %s: %w", s.opts.Name, err)
	}

	if !s.pm.Install(ctx) {
		return fmt.Errorf("installing dependencies: %w", ErrCommandFailed)
	}

	if s.opts.Tailwind {
		if !s.pm.Install(ctx, "tailwindcss", "@tailwindcss/vite") {
			return fmt.Errorf("installing Tailwind CSS: %w", ErrCommandFailed)
		}
	}

	if s.opts.Lucide {
		if !s.pm.Install(ctx, "lucide-react") {
			return fmt.Errorf("installing Lucide React: %w", ErrCommandFailed)
		}
	}

	return nil
}
