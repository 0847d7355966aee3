package packing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
)

func TestBoxCode(t *testing.T) {
	tests := []struct {
		roomName string
		number   int
		want     string
	}{
		{roomName: "Woonkamer", number: 1, want: "WO-1"},
		{roomName: "Keuken", number: 12, want: "KE-12"},
		{roomName: "hal", number: 3, want: "HA-3"},
		{roomName: "A", number: 2, want: "A-2"},
		{roomName: "", number: 1, want: "-1"},
		{roomName: "Éetkamer", number: 4, want: "ÉE-4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, packing.BoxCode(tt.roomName, tt.number))
		})
	}
}
