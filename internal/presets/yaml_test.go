package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/soroban/internal/abacus"
)

func TestExportImportYAML_RoundTrip(t *testing.T) {
	suanpan, err := NewPreset("suanpan", standardParams())
	require.NoError(t, err)
	suanpan.SetColors("#DC2626", "#3F3F46")

	soroban, err := NewPreset("soroban", abacus.Params{
		Columns:     13,
		UpperBeads:  1,
		LowerBeads:  4,
		UpperWeight: 5,
		Radix:       10,
	})
	require.NoError(t, err)

	data, err := ExportYAML([]*Preset{suanpan, soroban})
	require.NoError(t, err)

	imported, err := ImportYAML(data)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, suanpan.GUID(), imported[0].GUID(), "guid survives the round trip")
	assert.Equal(t, "suanpan", imported[0].Name())
	assert.Equal(t, suanpan.Params(), imported[0].Params())
	assert.Equal(t, "#DC2626", imported[0].BeadColor())
	assert.Equal(t, "#3F3F46", imported[0].FrameColor())

	assert.Equal(t, "soroban", imported[1].Name())
	assert.Equal(t, soroban.Params(), imported[1].Params())
}

func TestImportYAML_HandWritten(t *testing.T) {
	doc := `
presets:
  - name: counting-frame
    columns: 5
    upper_beads: 0
    lower_beads: 9
    upper_weight: 0
    radix: 10
`
	imported, err := ImportYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, imported, 1)

	p := imported[0]
	assert.Equal(t, "counting-frame", p.Name())
	assert.NotEmpty(t, p.GUID(), "missing guid gets a fresh one")
	assert.False(t, p.CreatedAt().IsZero(), "missing timestamps default to now")
	assert.Equal(t, abacus.Params{Columns: 5, LowerBeads: 9, Radix: 10}, p.Params())
}

func TestImportYAML_InvalidParams(t *testing.T) {
	doc := `
presets:
  - name: broken
    columns: 0
    lower_beads: 4
    radix: 10
`
	_, err := ImportYAML([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestImportYAML_Malformed(t *testing.T) {
	_, err := ImportYAML([]byte("presets: [not: {valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse presets yaml")
}
