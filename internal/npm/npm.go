package npm

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Client invokes the npm binary. Every invocation goes through run: a single
// blocking attempt with no timeout, no retry and no output capture. A nonzero
// exit and a failure to launch both reduce to a false return; callers decide
// whether that aborts the run.
type Client struct {
	// Bin is the package manager binary. Defaults to "npm".
	Bin string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	log *slog.Logger
}

// New returns a Client that logs each invocation through logger.
func New(bin string, logger *slog.Logger) *Client {
	if bin == "" {
		bin = "npm"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Bin: bin, log: logger}
}

// CreateVite scaffolds a Vite React template into a directory named after
// the project: npm create vite@latest <name> -- --template react.
func (c *Client) CreateVite(ctx context.Context, name string) bool {
	return c.run(ctx, "create", "vite@latest", name, "--", "--template", "react")
}

// Install runs npm install, optionally with package identifiers.
func (c *Client) Install(ctx context.Context, pkgs ...string) bool {
	return c.run(ctx, append([]string{"install"}, pkgs...)...)
}

// InstallDev runs npm install --save-dev with the given package identifiers.
func (c *Client) InstallDev(ctx context.Context, pkgs ...string) bool {
	args := append([]string{"install"}, pkgs...)
	return c.run(ctx, append(args, "--save-dev")...)
}

// Version returns the output of npm --version, trimmed.
func (c *Client) Version(ctx context.Context) (string, error) {
	bin, err := exec.LookPath(c.Bin)
	if err != nil {
		return "", err
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// run executes the binary with an argument list (no shell involved) in the
// current working directory and blocks until it exits.
func (c *Client) run(ctx context.Context, args ...string) bool {
	c.log.Debug("exec", "command", c.Bin+" "+strings.Join(args, " "))

	bin, err := exec.LookPath(c.Bin)
	if err != nil {
		c.log.Error("failed to locate package manager", "bin", c.Bin, "error", err)
		return false
	}

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			c.log.Error("command failed",
				"command", c.Bin+" "+strings.Join(args, " "),
				"exit_code", exitErr.ExitCode())
		} else {
			c.log.Error("failed to execute command",
				"command", c.Bin+" "+strings.Join(args, " "),
				"error", err)
		}
		return false
	}
	return true
}
