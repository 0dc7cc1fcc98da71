package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStatementSetRefusesOverwrite(t *testing.T) {
	cs := NewCanonicalStatement()

	require.True(t, cs.Set("revenue", 2024, 1000))
	assert.False(t, cs.Set("revenue", 2024, 2000), "occupied cell must not be overwritten")

	v, ok := cs.Value("revenue", 2024)
	require.True(t, ok)
	assert.Equal(t, 1000.0, v)

	// Different year on the same field is a separate cell.
	assert.True(t, cs.Set("revenue", 2023, 900))
	assert.Equal(t, 2, cs.Len())
}

func TestCanonicalStatementLookups(t *testing.T) {
	cs := NewCanonicalStatement()
	cs.Set("total_assets", 2023, 5000)
	cs.Set("total_assets", 2024, 5500)
	cs.Set("net_income", 2024, 120)

	assert.Equal(t, []FieldID{"net_income", "total_assets"}, cs.Fields())
	assert.Equal(t, []int{2023, 2024}, cs.Years())
	assert.Equal(t, []int{2023, 2024}, cs.FieldYears("total_assets"))
	assert.Equal(t, []int{2024}, cs.FieldYears("net_income"))
	assert.Empty(t, cs.FieldYears("revenue"))

	assert.True(t, cs.Has("net_income", 2024))
	assert.False(t, cs.Has("net_income", 2023))

	_, ok := cs.Value("revenue", 2024)
	assert.False(t, ok)
}

func TestCanonicalStatementEmpty(t *testing.T) {
	cs := NewCanonicalStatement()
	assert.Empty(t, cs.Fields())
	assert.Empty(t, cs.Years())
	assert.Zero(t, cs.Len())
}
