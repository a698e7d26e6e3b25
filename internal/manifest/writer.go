package manifest

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

// New creates an empty manifest with defaults.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
	}
}

// ComputeStats recalculates aggregate statistics from the icon list.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalIcons = len(m.Icons)
	for _, ic := range m.Icons {
		s.TotalBytes += ic.Bytes
	}
	m.Stats = s
}

// SortIcons orders entries by variant then size so repeated builds
// produce identical manifests.
func (m *Manifest) SortIcons() {
	sort.Slice(m.Icons, func(i, j int) bool {
		if m.Icons[i].Variant != m.Icons[j].Variant {
			return m.Icons[i].Variant < m.Icons[j].Variant
		}
		return m.Icons[i].Size < m.Icons[j].Size
	})
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.SortIcons()
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
