package ratio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finalyzer/internal/catalog"
)

func TestResultDisplay(t *testing.T) {
	tests := []struct {
		name      string
		result    Result
		precision int
		want      string
	}{
		{
			"percent",
			Result{Scale: catalog.ScalePercent, Value: 12.3456, Computable: true},
			2, "12.35%",
		},
		{
			"ratio gets x suffix",
			Result{Scale: catalog.ScaleRatio, Value: 1.234, Computable: true},
			2, "1.23x",
		},
		{
			"currency grouped",
			Result{Scale: catalog.ScaleCurrency, Value: 1234567.891, Computable: true},
			2, "1,234,567.89",
		},
		{
			"negative currency",
			Result{Scale: catalog.ScaleCurrency, Value: -4321.5, Computable: true},
			2, "-4,321.50",
		},
		{
			"not computable",
			Result{Scale: catalog.ScalePercent, Reason: ReasonMissingField, Missing: "total_equity"},
			2, "N/A",
		},
		{
			"zero precision",
			Result{Scale: catalog.ScalePercent, Value: 12.6, Computable: true},
			0, "13%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Display(tt.precision))
		})
	}
}

func TestResultExplain(t *testing.T) {
	missing := Result{Reason: ReasonMissingField, Missing: "total_equity"}
	assert.Equal(t, "not computable: missing field total_equity", missing.Explain())

	zero := Result{Reason: ReasonDivisionByZero}
	assert.Equal(t, "not computable: division by zero", zero.Explain())

	computed := Result{Computable: true, Value: 1.5}
	assert.Empty(t, computed.Explain())
}

func TestGroupThousands(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0.00", "0.00"},
		{"123.45", "123.45"},
		{"1234.50", "1,234.50"},
		{"1234567.89", "1,234,567.89"},
		{"-1234.50", "-1,234.50"},
		{"1000", "1,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in), "groupThousands(%q)", tt.in)
	}
}
