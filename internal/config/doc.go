// Package config manages user-level settings stored at ~/.fuse/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the package manager binary and the logging destination.
package config
