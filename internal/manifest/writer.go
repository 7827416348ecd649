package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"
)

// New creates an empty manifest for the named icon set.
func New(setName, root string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Set:         setName,
		Root:        root,
		Icons:       make(map[string]Icon),
	}
}

// ComputeStats recalculates aggregate statistics from icons.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalIcons = len(m.Icons)
	for _, ic := range m.Icons {
		s.TotalBytes += ic.Bytes
	}
	m.Stats = s
}

// Targets returns icon keys ordered by descending size, then by name.
func (m *Manifest) Targets() []string {
	keys := make([]string, 0, len(m.Icons))
	for k := range m.Icons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := m.Icons[keys[i]], m.Icons[keys[j]]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return keys[i] < keys[j]
	})
	return keys
}

// IconsSnippet renders the "icons" member of an extension manifest.json
// pointing each size at its SVG.
func (m *Manifest) IconsSnippet() ([]byte, error) {
	icons := make(map[string]string, len(m.Icons))
	for _, ic := range m.Icons {
		icons[strconv.Itoa(ic.Size)] = ic.Path
	}
	return json.MarshalIndent(map[string]any{"icons": icons}, "", "  ")
}

// WriteJSON serializes the manifest to a JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest written by WriteJSON.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
