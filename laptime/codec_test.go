package laptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Duration
	}{
		{"full form", "1:47.221", time.Minute + 47*time.Second + 221*time.Millisecond},
		{"no millis defaults to zero", "1:05", time.Minute + 5*time.Second},
		{"short millis padded", "1:05.2", time.Minute + 5*time.Second + 200*time.Millisecond},
		{"long millis truncated", "1:05.22134", time.Minute + 5*time.Second + 221*time.Millisecond},
		{"zero minutes", "0:59.999", 59*time.Second + 999*time.Millisecond},
		{"big minutes", "12:00.000", 12 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"1:60.000",
		"abc:00.000",
		"1:5",
		"1:555",
		"105.221",
		"1:05.221.3",
		"-1:05.000",
		"1:05,221",
		"1:",
	}

	for _, text := range bad {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1:47.221", Format(107*time.Second+221*time.Millisecond))
	assert.Equal(t, "0:05.000", Format(5*time.Second))
	assert.Equal(t, "10:00.001", Format(10*time.Minute+time.Millisecond))
	assert.Equal(t, "0:00.000", Format(-time.Second))
}

func TestRoundTrip(t *testing.T) {
	canonical := []string{"1:47.221", "0:00.000", "0:59.999", "25:01.010", "3:05.000"}
	for _, text := range canonical {
		d, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, text, Format(d))
	}
}
