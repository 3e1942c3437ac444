// Package manifest reads, patches, and rewrites a project's package.json.
// Fields the tool does not touch survive a load/save round trip, and saved
// manifests can be checked against an embedded JSON Schema to surface
// structural problems as warnings.
package manifest
