package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBreakdownHour extracts the hour from an advertiser-timezone hourly
// breakdown value such as "14:00:00-14:59:59": the leading integer before
// the first colon.
func ParseBreakdownHour(value string) (int, error) {
	idx := strings.Index(value, ":")
	if idx <= 0 {
		return 0, fmt.Errorf("malformed hourly breakdown value: %q", value)
	}

	hour, err := strconv.Atoi(value[:idx])
	if err != nil {
		return 0, fmt.Errorf("malformed hourly breakdown value %q: %w", value, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in breakdown value %q", value)
	}

	return hour, nil
}
