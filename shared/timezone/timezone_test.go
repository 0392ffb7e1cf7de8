package timezone_test

import (
	"carrental/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "empty falls back to UTC", zone: "", expected: "UTC"},
		{name: "unknown falls back to UTC", zone: "Mars/Olympus", expected: "UTC"},
		{name: "standard name", zone: "Asia/Jakarta", expected: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Init(tt.zone)
			assert.Equal(t, tt.expected, timezone.GetLocation().String())
		})
	}

	timezone.Init("UTC")
}

func TestFormatAndParse(t *testing.T) {
	timezone.Init("Asia/Jakarta")
	defer timezone.Init("UTC")

	testTime := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02", timezone.Format(testTime, time.DateOnly))

	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", parsed.Location().String())
	assert.False(t, timezone.Now().IsZero())
}
