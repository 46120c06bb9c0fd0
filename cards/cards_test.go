package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacePoints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		face Face
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Six, 6},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.face.Points(), "face %s", tt.face)
	}
}

func TestFaceHiLo(t *testing.T) {
	t.Parallel()
	for _, f := range []Face{Two, Three, Four, Five, Six} {
		assert.Equal(t, 1, f.HiLo(), "face %s", f)
	}
	for _, f := range []Face{Seven, Eight, Nine} {
		assert.Equal(t, 0, f.HiLo(), "face %s", f)
	}
	for _, f := range []Face{Ten, Jack, Queen, King, Ace} {
		assert.Equal(t, -1, f.HiLo(), "face %s", f)
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Card
	}{
		{"Ah", NewCard(Ace, Hearts)},
		{"kd", NewCard(King, Diamonds)},
		{"Tc", NewCard(Ten, Clubs)},
		{"10s", NewCard(Ten, Spades)},
		{"7h", NewCard(Seven, Hearts)},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "A", "1h", "Zx", "Ax", "11s"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "10♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "Q♦", NewCard(Queen, Diamonds).String())
}

func TestNewSet(t *testing.T) {
	t.Parallel()
	set := NewSet()
	require.Len(t, set, SetSize)

	seen := make(map[Card]bool)
	for _, c := range set {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}
