package paypal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  *float64
		want    string
		wantErr string
	}{
		{
			name:    "missing amount",
			amount:  nil,
			wantErr: "amount is required",
		},
		{
			name:    "zero amount",
			amount:  floatPtr(0),
			wantErr: "amount must be positive",
		},
		{
			name:    "negative amount",
			amount:  floatPtr(-5),
			wantErr: "amount must be positive",
		},
		{
			name:   "whole number gets two decimals",
			amount: floatPtr(10),
			want:   "10.00",
		},
		{
			name:   "one decimal gets padded",
			amount: floatPtr(12.3),
			want:   "12.30",
		},
		{
			name:   "three decimals round up",
			amount: floatPtr(12.345),
			want:   "12.35",
		},
		{
			name:   "sub-cent amount survives rounding",
			amount: floatPtr(0.01),
			want:   "0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.amount)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
