package qmx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImplicant_RoundTrip(t *testing.T) {
	for _, s := range []string{"0101", "----", "--^^", "0~~~", "1--^^", "^^^^^^^^"} {
		imp, err := ParseImplicant(s)
		require.NoError(t, err)
		assert.Equal(t, s, imp.String())
		assert.Equal(t, s, imp.Key())
	}
}

func TestParseImplicant_RejectsUnknownCharacter(t *testing.T) {
	_, err := ParseImplicant("01x0")
	require.Error(t, err)
}

func TestParseImplicant_RejectsMixedParity(t *testing.T) {
	_, err := ParseImplicant("0^~0")
	require.Error(t, err)
}

func TestParseImplicant_RejectsEmptyAndOversize(t *testing.T) {
	_, err := ParseImplicant("")
	assert.Error(t, err)

	_, err = ParseImplicant(strings.Repeat("0", 65))
	assert.Error(t, err)
}

func TestImplicant_Complexity(t *testing.T) {
	cases := []struct {
		s    string
		want float64
	}{
		{"1111", 4.0},
		{"0000", 6.0},
		{"^^^^", 5.0},
		{"~~~~", 7.0},
		{"----", 0.0},
		{"1---", 1.0},
		{"0---", 1.5},
		{"^---", 1.25},
		{"~---", 1.75},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MustParseImplicant(tc.s).Complexity(), tc.s)
	}
}

func TestSet_Equal(t *testing.T) {
	a := NewSet("010-", "1-01")
	b := NewSet("1-01", "010-")
	assert.True(t, a.Equal(b))

	c := NewSet("010-")
	assert.False(t, a.Equal(c))
}

func TestGetTokenIndices(t *testing.T) {
	imp := MustParseImplicant("10-^-")
	idx := GetTokenIndices(imp)
	assert.Equal(t, []int{0}, idx.Ones)
	assert.Equal(t, []int{1}, idx.Zeros)
	assert.Equal(t, []int{3}, idx.Xor)
	assert.Equal(t, []int{2, 4}, idx.DC)
}

func TestBitsNeeded(t *testing.T) {
	assert.Equal(t, 1, BitsNeeded([]int{0}))
	assert.Equal(t, 1, BitsNeeded([]int{0, 1}))
	assert.Equal(t, 4, BitsNeeded([]int{0, 15}))
	assert.Equal(t, 5, BitsNeeded([]int{16}))
}
