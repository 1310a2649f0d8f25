package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleOptions() []OptionSpec {
	return []OptionSpec{
		{
			Name:     "tamano",
			Required: true,
			Modifier: DropdownModifier{Choices: map[string]float64{"A": 0, "B": 50}},
		},
		{
			Name:     "retoque",
			Modifier: CheckboxModifier{PriceIfTrue: 30},
		},
	}
}

func TestComputeSubtotal(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  float64
		options    []OptionSpec
		selections map[string]interface{}
		quantity   int
		want       float64
		wantErr    bool
	}{
		{
			name:       "base price only",
			basePrice:  100,
			options:    nil,
			selections: map[string]interface{}{},
			quantity:   3,
			want:       300,
		},
		{
			name:       "dropdown and checked checkbox",
			basePrice:  500,
			options:    sampleOptions(),
			selections: map[string]interface{}{"tamano": "B", "retoque": true},
			quantity:   2,
			want:       1160,
		},
		{
			name:       "unchecked checkbox adds nothing",
			basePrice:  500,
			options:    sampleOptions(),
			selections: map[string]interface{}{"tamano": "A", "retoque": false},
			quantity:   1,
			want:       500,
		},
		{
			name:       "absent checkbox adds nothing",
			basePrice:  500,
			options:    sampleOptions(),
			selections: map[string]interface{}{"tamano": "A"},
			quantity:   1,
			want:       500,
		},
		{
			name:       "unknown dropdown choice adds nothing",
			basePrice:  500,
			options:    sampleOptions(),
			selections: map[string]interface{}{"tamano": "XL"},
			quantity:   1,
			want:       500,
		},
		{
			name:       "zero quantity rejected",
			basePrice:  100,
			selections: map[string]interface{}{},
			quantity:   0,
			wantErr:    true,
		},
		{
			name:       "negative quantity rejected",
			basePrice:  100,
			selections: map[string]interface{}{},
			quantity:   -2,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSubtotal(tt.basePrice, tt.options, tt.selections, tt.quantity)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSubtotalIsIdempotent(t *testing.T) {
	selections := map[string]interface{}{"tamano": "B", "retoque": true}

	first, err := ComputeSubtotal(500, sampleOptions(), selections, 2)
	assert.NoError(t, err)
	second, err := ComputeSubtotal(500, sampleOptions(), selections, 2)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDefaultAdvance(t *testing.T) {
	assert.Equal(t, 348.0, DefaultAdvance(1160))
	assert.Equal(t, 30.0, DefaultAdvance(100))
	assert.Equal(t, 31.0, DefaultAdvance(101))
	assert.Equal(t, 0.0, DefaultAdvance(0))
}
