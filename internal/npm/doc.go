// Package npm is the single chokepoint for invoking the external package
// manager. Commands are built as argument lists and executed directly, never
// through a shell, so project names and package identifiers cannot be
// reinterpreted. Each invocation is logged at debug level before it runs and
// reduces to a boolean outcome.
package npm
