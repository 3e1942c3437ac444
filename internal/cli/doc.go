// Package cli defines the Cobra command tree for the fuse CLI. The root
// command runs the project scaffolder; each other file in this package
// registers one subcommand (version, idea, doctor, config) with the root.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
