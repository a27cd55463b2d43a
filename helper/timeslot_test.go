package helper

import (
	"testing"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		slots []string
		want  []int
	}{
		{
			name:  "sorted and deduplicated",
			slots: []string{"20:45", "18:30", "18:30"},
			want:  []int{18*60 + 30, 20*60 + 45},
		},
		{
			name:  "single slot",
			slots: []string{"09:00"},
			want:  []int{9 * 60},
		},
		{
			name:  "day boundaries",
			slots: []string{"23:59", "00:00"},
			want:  []int{0, 23*60 + 59},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTimeSlots(tt.slots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTimeSlotsInvalid(t *testing.T) {
	invalid := []string{"7:30", "24:00", "18:60", "1830", "", "18:3", "ab:cd"}

	for _, raw := range invalid {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeTimeSlots([]string{raw})
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidTimeSlot)
		})
	}
}

func TestNormalizeTimeSlotsOneBadSlotFailsAll(t *testing.T) {
	_, err := NormalizeTimeSlots([]string{"18:30", "25:00", "20:45"})
	require.ErrorIs(t, err, model.ErrInvalidTimeSlot)
}

func TestFormatSlot(t *testing.T) {
	assert.Equal(t, "18:30", FormatSlot(18*60+30))
	assert.Equal(t, "00:00", FormatSlot(0))
	assert.Equal(t, "09:05", FormatSlot(9*60+5))
}
