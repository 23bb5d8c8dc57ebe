package sqlite

import (
	"time"

	"github.com/zjrosen/soroban/internal/presets"
)

// PresetModel represents the database row for the presets table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type PresetModel struct {
	ID          int64
	GUID        string
	Name        string
	Columns     int64
	UpperBeads  int64
	LowerBeads  int64
	UpperWeight int64
	Radix       int64
	BeadColor   *string // nullable
	FrameColor  *string // nullable
	CreatedAt   int64   // Unix timestamp
	UpdatedAt   int64   // Unix timestamp
}

// toPresetModel converts a domain Preset entity to a database PresetModel.
func toPresetModel(p *presets.Preset) *PresetModel {
	params := p.Params()
	m := &PresetModel{
		ID:          p.ID(),
		GUID:        p.GUID(),
		Name:        p.Name(),
		Columns:     int64(params.Columns),
		UpperBeads:  int64(params.UpperBeads),
		LowerBeads:  int64(params.LowerBeads),
		UpperWeight: int64(params.UpperWeight), //nolint:gosec // G115: weight is bounded by validation
		Radix:       int64(params.Radix),       //nolint:gosec // G115: radix is bounded by validation
		CreatedAt:   p.CreatedAt().Unix(),
		UpdatedAt:   p.UpdatedAt().Unix(),
	}
	if p.BeadColor() != "" {
		beadColor := p.BeadColor()
		m.BeadColor = &beadColor
	}
	if p.FrameColor() != "" {
		frameColor := p.FrameColor()
		m.FrameColor = &frameColor
	}
	return m
}

// toDomain converts a database PresetModel to a domain Preset entity.
func (m *PresetModel) toDomain() *presets.Preset {
	var beadColor, frameColor string
	if m.BeadColor != nil {
		beadColor = *m.BeadColor
	}
	if m.FrameColor != nil {
		frameColor = *m.FrameColor
	}
	return presets.ReconstitutePreset(
		m.ID,
		m.GUID,
		m.Name,
		int(m.Columns),
		int(m.UpperBeads),
		int(m.LowerBeads),
		uint64(m.UpperWeight), //nolint:gosec // G115: stored values are non-negative by CHECK constraint
		uint64(m.Radix),       //nolint:gosec // G115: stored values are non-negative by CHECK constraint
		beadColor,
		frameColor,
		time.Unix(m.CreatedAt, 0),
		time.Unix(m.UpdatedAt, 0),
	)
}
