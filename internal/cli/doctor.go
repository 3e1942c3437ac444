package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fuse-labs/fuse/internal/config"
	"github.com/fuse-labs/fuse/internal/npm"
	"github.com/spf13/cobra"
)

// minNpmVersion is the oldest npm known to handle `npm create vite@latest`
// with pass-through template arguments.
const minNpmVersion = "9.0.0"

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment can scaffold a project",
	Long:  `Verify that Node.js and npm are available and recent enough to generate a Vite project.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		out := cmd.OutOrStdout()

		ok := true

		if path, err := exec.LookPath("node"); err == nil {
			fmt.Fprintf(out, "  [ OK ] node found at %s\n", path)
		} else {
			fmt.Fprintln(out, "  [MISS] node not found on PATH")
			ok = false
		}

		bin := config.Get(config.KeyNpmBin)
		if path, err := exec.LookPath(bin); err == nil {
			fmt.Fprintf(out, "  [ OK ] %s found at %s\n", bin, path)
		} else {
			fmt.Fprintf(out, "  [MISS] %s not found on PATH\n", bin)
			ok = false
		}

		if ok {
			log, closeLog, err := newRunLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			version, err := npm.New(bin, log).Version(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "  [WARN] could not read %s version: %v\n", bin, err)
			} else if recent, verErr := versionAtLeast(version, minNpmVersion); verErr != nil {
				fmt.Fprintf(out, "  [WARN] unparseable %s version %q: %v\n", bin, version, verErr)
			} else if recent {
				fmt.Fprintf(out, "  [ OK ] %s %s (>= %s)\n", bin, version, minNpmVersion)
			} else {
				fmt.Fprintf(out, "  [MISS] %s %s is older than %s\n", bin, version, minNpmVersion)
				ok = false
			}
		}

		if !ok {
			return fmt.Errorf("environment is not ready; install Node.js >= %s", minNpmVersion)
		}
		fmt.Fprintln(out, "Environment looks good.")
		return nil
	},
}

// versionAtLeast reports whether version is >= floor, tolerating a "v" prefix.
func versionAtLeast(version, floor string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, err
	}
	f, err := semver.NewVersion(floor)
	if err != nil {
		return false, err
	}
	return v.Compare(f) >= 0, nil
}
