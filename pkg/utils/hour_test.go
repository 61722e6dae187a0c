package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBreakdownHour(t *testing.T) {
	hour, err := ParseBreakdownHour("14:00:00-14:59:59")
	assert.NoError(t, err)
	assert.Equal(t, 14, hour)

	hour, err = ParseBreakdownHour("0:00:00-0:59:59")
	assert.NoError(t, err)
	assert.Equal(t, 0, hour)

	hour, err = ParseBreakdownHour("23:00:00-23:59:59")
	assert.NoError(t, err)
	assert.Equal(t, 23, hour)
}

func TestParseBreakdownHourInvalid(t *testing.T) {
	for _, value := range []string{"", "nope", ":00:00", "24:00:00-24:59:59", "-1:00:00"} {
		_, err := ParseBreakdownHour(value)
		assert.Error(t, err, "value %q should not parse", value)
	}
}
