package helper

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cinema_scheduler/model"
)

// NormalizeTimeSlots parses raw "HH:MM" strings into ascending, deduplicated
// minute-of-day offsets. Any malformed slot fails the whole request.
func NormalizeTimeSlots(slots []string) ([]int, error) {
	seen := make(map[int]bool, len(slots))
	var normalized []int

	for _, raw := range slots {
		minutes, err := parseSlot(raw)
		if err != nil {
			return nil, err
		}
		if seen[minutes] {
			continue
		}
		seen[minutes] = true
		normalized = append(normalized, minutes)
	}

	sort.Ints(normalized)
	return normalized, nil
}

func parseSlot(raw string) (int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTimeSlot, raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTimeSlot, raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTimeSlot, raw)
	}
	return hour*60 + minute, nil
}

// FormatSlot renders a minute-of-day offset back as "HH:MM".
func FormatSlot(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
