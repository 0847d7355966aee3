package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "€12,34", cost.FormatCents(1234))
	assert.Equal(t, "€0,05", cost.FormatCents(5))
	assert.Equal(t, "€1250,00", cost.FormatCents(125000))
	assert.Equal(t, "-€3,50", cost.FormatCents(-350))
}

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12.34", want: 1234},
		{in: "12,34", want: 1234},
		{in: "€ 12,34", want: 1234},
		{in: "12", want: 1200},
		{in: "12.3", want: 1230},
		{in: "12.345", want: 1235}, // half-up
		{in: "12.344", want: 1234},
		{in: ",50", want: 50},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-5,00", wantErr: true},
		{in: "0", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cost.ParseDecimalToCents(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, cost.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
