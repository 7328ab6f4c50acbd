package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Key
	}{
		{"catalog name", "monza", "monza"},
		{"case and spacing normalized", "  Monza ", "monza"},
		{"multi word", "Red Bull Ring", "red bull ring"},
		{"alias", "spa", "spa francorchamps"},
		{"alias cota", "COTA", "circuit of the americas"},
		{"alias without umlaut", "nurburgring", "nürburgring"},
		{"alias nordschleife", "nordschleife", "24h nürburgring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Resolve(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestResolveUnknownTrack(t *testing.T) {
	for _, raw := range []string{"atlantis", "", "  ", "monza gp"} {
		_, err := Resolve(raw)
		assert.ErrorIs(t, err, ErrUnknownTrack, "input %q", raw)
	}
}

func TestImage(t *testing.T) {
	url, ok := Image("Monza")
	require.True(t, ok)
	assert.Contains(t, url, "73988af861d14f0bb3b39149aefaff65")

	_, ok = Image("atlantis")
	assert.False(t, ok)
}

func TestImageFirstMatchWins(t *testing.T) {
	// "nürburgring" precedes "24h nürburgring" in catalog order, so a name
	// mentioning both resolves to the plain nürburgring image.
	plain, ok := Image("nürburgring")
	require.True(t, ok)

	got, ok := Image("24h nürburgring")
	require.True(t, ok)
	assert.Equal(t, plain, got)
}

func TestKeysOrderIsStable(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, Key("paul ricard"), keys[0])
	assert.Equal(t, Key("24h nürburgring"), keys[len(keys)-1])
	assert.Equal(t, keys, Keys())
}
