package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// FileName is the npm package manifest at the project root.
const FileName = "package.json"

// Manifest is a loaded package.json. All fields the tool does not touch are
// preserved verbatim through a load/save round trip.
type Manifest struct {
	path string
	data map[string]interface{}
}

// Load reads and parses a package.json file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Manifest{path: path, data: data}, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string { return m.path }

// Name returns the package name, or "" if absent.
func (m *Manifest) Name() string {
	name, _ := m.data["name"].(string)
	return name
}

// Scripts returns the scripts block. Entries with non-string values are
// skipped. The returned map is a copy.
func (m *Manifest) Scripts() map[string]string {
	out := make(map[string]string)
	scripts, _ := m.data["scripts"].(map[string]interface{})
	for name, v := range scripts {
		if s, ok := v.(string); ok {
			out[name] = s
		}
	}
	return out
}

// SetScript adds or overwrites one script entry, preserving all others.
func (m *Manifest) SetScript(name, command string) {
	scripts, ok := m.data["scripts"].(map[string]interface{})
	if !ok {
		scripts = make(map[string]interface{})
		m.data["scripts"] = scripts
	}
	scripts[name] = command
}

// Save rewrites the manifest wholesale with 2-space indentation.
func (m *Manifest) Save() error {
	out, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", m.path, err)
	}
	if err := os.WriteFile(m.path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}
	return nil
}
