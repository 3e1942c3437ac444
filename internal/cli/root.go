package cli

import (
	"fmt"
	"regexp"

	"github.com/fuse-labs/fuse/internal/branding"
	"github.com/fuse-labs/fuse/internal/config"
	"github.com/fuse-labs/fuse/internal/npm"
	"github.com/fuse-labs/fuse/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Project names become directory names and are interpolated into generated
// files, so they are restricted to a filesystem-safe alphabet.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var (
	flagTailwind bool
	flagLucide   bool
	flagDeploy   bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a React project with Vite: it generates the template,
installs dependencies, strips the boilerplate, rewrites the Vite config, and
optionally wires Tailwind CSS, Lucide React, and GitHub Pages deployment.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagTailwind, "tailwind", "t", false, "Install Tailwind CSS")
	rootCmd.Flags().BoolVarP(&flagLucide, "lucide", "l", false, "Install Lucide React")
	rootCmd.Flags().BoolVarP(&flagDeploy, "deploy", "d", false, "Configure GitHub Pages deployment")
}

func runRoot(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateName(name); err != nil {
		return err
	}

	config.Load()

	log, closeLog, err := newRunLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := scaffold.Options{
		Name:     name,
		Tailwind: flagTailwind,
		Lucide:   flagLucide,
		Deploy:   flagDeploy,
	}

	log.Info(branding.CLIName(), "version", buildVersion)
	log.Debug("parameters",
		"project_name", opts.Name,
		"tailwind", opts.Tailwind,
		"lucide", opts.Lucide,
		"deploy", opts.Deploy)

	client := npm.New(config.Get(config.KeyNpmBin), log)
	s := scaffold.New(log, client, opts)

	if err := s.Run(cmd.Context()); err != nil {
		return err
	}
	log.Info("successfully created project", "name", opts.Name)

	if opts.Deploy {
		if err := s.SetupPages(cmd.Context()); err != nil {
			return err
		}
		log.Info("GitHub Pages deployment configured; run 'npm run deploy' after committing your changes")
	}

	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	return rootCmd.Execute()
}
