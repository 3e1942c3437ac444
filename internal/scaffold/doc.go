// Package scaffold implements the project scaffolder behind the root
// command. It drives the external package manager to generate and populate a
// Vite React project, then applies a fixed sequence of edits: boilerplate
// removal, .gitignore and vite.config.js rewrites, source patches, and
// optional GitHub Pages wiring. Steps run strictly in order on a single
// goroutine; each step's success gates the next.
package scaffold
