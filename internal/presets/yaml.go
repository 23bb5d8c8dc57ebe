package presets

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/soroban/internal/abacus"
)

// presetDoc is the YAML form of a preset used for export and import.
// GUIDs and timestamps travel with the document so a round trip
// preserves identity.
type presetDoc struct {
	GUID        string `yaml:"guid,omitempty"`
	Name        string `yaml:"name"`
	Columns     int    `yaml:"columns"`
	UpperBeads  int    `yaml:"upper_beads"`
	LowerBeads  int    `yaml:"lower_beads"`
	UpperWeight uint64 `yaml:"upper_weight"`
	Radix       uint64 `yaml:"radix"`
	BeadColor   string `yaml:"bead_color,omitempty"`
	FrameColor  string `yaml:"frame_color,omitempty"`
	CreatedAt   string `yaml:"created_at,omitempty"`
	UpdatedAt   string `yaml:"updated_at,omitempty"`
}

type exportFile struct {
	Presets []presetDoc `yaml:"presets"`
}

// ExportYAML serializes presets to a YAML document.
func ExportYAML(list []*Preset) ([]byte, error) {
	file := exportFile{Presets: make([]presetDoc, 0, len(list))}
	for _, p := range list {
		file.Presets = append(file.Presets, presetDoc{
			GUID:        p.GUID(),
			Name:        p.Name(),
			Columns:     p.Params().Columns,
			UpperBeads:  p.Params().UpperBeads,
			LowerBeads:  p.Params().LowerBeads,
			UpperWeight: p.Params().UpperWeight,
			Radix:       p.Params().Radix,
			BeadColor:   p.BeadColor(),
			FrameColor:  p.FrameColor(),
			CreatedAt:   p.CreatedAt().UTC().Format(time.RFC3339),
			UpdatedAt:   p.UpdatedAt().UTC().Format(time.RFC3339),
		})
	}
	return yaml.Marshal(file)
}

// ImportYAML parses a YAML document produced by ExportYAML (or written
// by hand) into presets. Each entry is validated; a missing GUID gets a
// fresh one, missing timestamps default to now.
func ImportYAML(data []byte) ([]*Preset, error) {
	var file exportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets yaml: %w", err)
	}

	out := make([]*Preset, 0, len(file.Presets))
	for i, doc := range file.Presets {
		params := abacus.Params{
			Columns:     doc.Columns,
			UpperBeads:  doc.UpperBeads,
			LowerBeads:  doc.LowerBeads,
			UpperWeight: doc.UpperWeight,
			Radix:       doc.Radix,
		}
		p, err := NewPreset(doc.Name, params)
		if err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i, doc.Name, err)
		}
		if doc.GUID != "" {
			p.guid = doc.GUID
		}
		p.beadColor = doc.BeadColor
		p.frameColor = doc.FrameColor
		if t, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
			p.createdAt = t
		}
		if t, err := time.Parse(time.RFC3339, doc.UpdatedAt); err == nil {
			p.updatedAt = t
		}
		out = append(out, p)
	}
	return out, nil
}
