// Package presets defines saved abacus layouts and the repository
// contract for persisting them.
package presets

import (
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/soroban/internal/abacus"
)

// Preset is a named abacus layout: the structural parameters of a board
// plus optional display colors. Presets are persisted so a layout can be
// recalled by name across runs.
type Preset struct {
	id          int64
	guid        string
	name        string
	columns     int
	upperBeads  int
	lowerBeads  int
	upperWeight uint64
	radix       uint64
	beadColor   string
	frameColor  string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPreset creates a preset for the given board parameters. The params
// are validated before the preset is built.
func NewPreset(name string, params abacus.Params) (*Preset, error) {
	if name == "" {
		return nil, &InvalidPresetError{Reason: "name must not be empty"}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Preset{
		guid:        uuid.New().String(),
		name:        name,
		columns:     params.Columns,
		upperBeads:  params.UpperBeads,
		lowerBeads:  params.LowerBeads,
		upperWeight: params.UpperWeight,
		radix:       params.Radix,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstitutePreset rebuilds a preset from persisted state. Used by
// repository implementations; skips validation because the stored row
// was validated on the way in.
func ReconstitutePreset(
	id int64,
	guid string,
	name string,
	columns, upperBeads, lowerBeads int,
	upperWeight, radix uint64,
	beadColor, frameColor string,
	createdAt, updatedAt time.Time,
) *Preset {
	return &Preset{
		id:          id,
		guid:        guid,
		name:        name,
		columns:     columns,
		upperBeads:  upperBeads,
		lowerBeads:  lowerBeads,
		upperWeight: upperWeight,
		radix:       radix,
		beadColor:   beadColor,
		frameColor:  frameColor,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the internal database identifier, or 0 if unsaved.
func (p *Preset) ID() int64 { return p.id }

// SetID assigns the database identifier after an insert.
func (p *Preset) SetID(id int64) { p.id = id }

// GUID returns the stable external identifier.
func (p *Preset) GUID() string { return p.guid }

// Name returns the preset's display name.
func (p *Preset) Name() string { return p.name }

// Rename changes the preset's name and bumps the updated timestamp.
func (p *Preset) Rename(name string) error {
	if name == "" {
		return &InvalidPresetError{Reason: "name must not be empty"}
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

// Params returns the board parameters this preset describes.
func (p *Preset) Params() abacus.Params {
	return abacus.Params{
		Columns:     p.columns,
		UpperBeads:  p.upperBeads,
		LowerBeads:  p.lowerBeads,
		UpperWeight: p.upperWeight,
		Radix:       p.radix,
	}
}

// SetParams replaces the board parameters and bumps the updated timestamp.
func (p *Preset) SetParams(params abacus.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	p.columns = params.Columns
	p.upperBeads = params.UpperBeads
	p.lowerBeads = params.LowerBeads
	p.upperWeight = params.UpperWeight
	p.radix = params.Radix
	p.updatedAt = time.Now()
	return nil
}

// BeadColor returns the bead color override, or "" for the theme default.
func (p *Preset) BeadColor() string { return p.beadColor }

// FrameColor returns the frame color override, or "" for the theme default.
func (p *Preset) FrameColor() string { return p.frameColor }

// SetColors assigns the color overrides and bumps the updated timestamp.
func (p *Preset) SetColors(bead, frame string) {
	p.beadColor = bead
	p.frameColor = frame
	p.updatedAt = time.Now()
}

// CreatedAt returns when the preset was first saved.
func (p *Preset) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the preset was last modified.
func (p *Preset) UpdatedAt() time.Time { return p.updatedAt }

// Repository persists presets. Implementations live in
// internal/infrastructure/sqlite.
type Repository interface {
	// Save inserts a new preset (ID 0) or updates an existing one.
	Save(preset *Preset) error

	// FindByName retrieves a preset by its display name.
	// Returns PresetNotFoundError if none exists.
	FindByName(name string) (*Preset, error)

	// FindByGUID retrieves a preset by its stable identifier.
	// Returns PresetNotFoundError if none exists.
	FindByGUID(guid string) (*Preset, error)

	// List returns all presets ordered by name.
	List() ([]*Preset, error)

	// Delete removes a preset by name.
	// Returns PresetNotFoundError if none exists.
	Delete(name string) error
}
