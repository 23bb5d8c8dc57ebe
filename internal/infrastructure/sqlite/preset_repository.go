package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/zjrosen/soroban/internal/presets"
)

// presetRepository implements presets.Repository using SQLite.
type presetRepository struct {
	db *sql.DB
}

// newPresetRepository creates a new presetRepository instance.
func newPresetRepository(db *sql.DB) *presetRepository {
	return &presetRepository{db: db}
}

// Ensure presetRepository implements presets.Repository.
var _ presets.Repository = (*presetRepository)(nil)

const presetColumns = `id, guid, name, columns, upper_beads, lower_beads, upper_weight, radix, bead_color, frame_color, created_at, updated_at`

// Save persists a preset to the database.
// For new presets (ID == 0), inserts a new row and sets the preset ID.
// For existing presets (ID > 0), updates the existing row.
// A name collision on insert is reported as DuplicateNameError.
func (r *presetRepository) Save(preset *presets.Preset) error {
	model := toPresetModel(preset)

	if preset.ID() == 0 {
		result, err := r.db.Exec(
			`INSERT INTO presets (guid, name, columns, upper_beads, lower_beads, upper_weight, radix, bead_color, frame_color, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			model.GUID, model.Name, model.Columns, model.UpperBeads, model.LowerBeads, model.UpperWeight, model.Radix,
			model.BeadColor, model.FrameColor, model.CreatedAt, model.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err, "presets.name") {
				return &presets.DuplicateNameError{Name: model.Name}
			}
			return fmt.Errorf("failed to insert preset: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		preset.SetID(id)
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE presets SET name = ?, columns = ?, upper_beads = ?, lower_beads = ?, upper_weight = ?, radix = ?, bead_color = ?, frame_color = ?, updated_at = ? WHERE id = ?`,
		model.Name, model.Columns, model.UpperBeads, model.LowerBeads, model.UpperWeight, model.Radix,
		model.BeadColor, model.FrameColor, model.UpdatedAt, model.ID,
	)
	if err != nil {
		if isUniqueViolation(err, "presets.name") {
			return &presets.DuplicateNameError{Name: model.Name}
		}
		return fmt.Errorf("failed to update preset: %w", err)
	}
	return nil
}

// FindByName retrieves a preset by its display name.
// Returns PresetNotFoundError if no matching preset exists.
func (r *presetRepository) FindByName(name string) (*presets.Preset, error) {
	var model PresetModel
	err := r.db.QueryRow(
		`SELECT `+presetColumns+` FROM presets WHERE name = ?`,
		name,
	).Scan(&model.ID, &model.GUID, &model.Name, &model.Columns, &model.UpperBeads, &model.LowerBeads,
		&model.UpperWeight, &model.Radix, &model.BeadColor, &model.FrameColor, &model.CreatedAt, &model.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &presets.PresetNotFoundError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find preset by name: %w", err)
	}
	return model.toDomain(), nil
}

// FindByGUID retrieves a preset by its stable identifier.
// Returns PresetNotFoundError if no matching preset exists.
func (r *presetRepository) FindByGUID(guid string) (*presets.Preset, error) {
	var model PresetModel
	err := r.db.QueryRow(
		`SELECT `+presetColumns+` FROM presets WHERE guid = ?`,
		guid,
	).Scan(&model.ID, &model.GUID, &model.Name, &model.Columns, &model.UpperBeads, &model.LowerBeads,
		&model.UpperWeight, &model.Radix, &model.BeadColor, &model.FrameColor, &model.CreatedAt, &model.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &presets.PresetNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find preset by guid: %w", err)
	}
	return model.toDomain(), nil
}

// List retrieves all presets ordered by name.
func (r *presetRepository) List() ([]*presets.Preset, error) {
	rows, err := r.db.Query(`SELECT ` + presetColumns + ` FROM presets ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*presets.Preset
	for rows.Next() {
		var model PresetModel
		err := rows.Scan(&model.ID, &model.GUID, &model.Name, &model.Columns, &model.UpperBeads, &model.LowerBeads,
			&model.UpperWeight, &model.Radix, &model.BeadColor, &model.FrameColor, &model.CreatedAt, &model.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		out = append(out, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preset rows: %w", err)
	}

	return out, nil
}

// Delete removes a preset by name.
// Returns PresetNotFoundError if no matching preset exists.
func (r *presetRepository) Delete(name string) error {
	result, err := r.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &presets.PresetNotFoundError{Name: name}
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure
// on the named column. The ncruces driver surfaces constraint errors as
// text, so this matches on the message.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}
