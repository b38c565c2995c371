package qmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPrimeImplicants_CollapsesFullCube(t *testing.T) {
	terms := NewSet()
	for i := 0; i < 16; i++ {
		terms.Add(Num2Str(4, uint64(i)))
	}
	primes, _, err := FindPrimeImplicants(4, false, terms)
	require.NoError(t, err)
	require.Len(t, primes, 1)
	assert.Equal(t, "----", primes[0].String())
}

func TestFindPrimeImplicants_AdjacentPairMerges(t *testing.T) {
	// 0100 and 0101 merge to 010-.
	terms := NewSet("0100", "0101")
	primes, profile, err := FindPrimeImplicants(4, false, terms)
	require.NoError(t, err)
	require.Len(t, primes, 1)
	assert.Equal(t, "010-", primes[0].String())
	assert.Greater(t, profile.Cmp, 0)
	assert.Equal(t, 0, profile.Xor)
	assert.Equal(t, 0, profile.Xnor)
}

func TestFindPrimeImplicants_NonAdjacentTermsStaySeparate(t *testing.T) {
	terms := NewSet("0000", "1111")
	primes, _, err := FindPrimeImplicants(4, false, terms)
	require.NoError(t, err)
	require.Len(t, primes, 2)
}

func TestFindPrimeImplicants_WidthMismatchErrors(t *testing.T) {
	terms := NewSet("000", "0000")
	_, _, err := FindPrimeImplicants(4, false, terms)
	require.Error(t, err)
}

func TestFindPrimeImplicants_XorSeedProducesParityTerm(t *testing.T) {
	// ones=[1,2,5,6,9,10,13,14] at 4 bits, with useXor, collapses
	// through the full pipeline to {"--^^"}; at the prime-implicant
	// stage alone we just check an XOR term gets seeded.
	terms := NewSet()
	for _, v := range []int{1, 2, 5, 6, 9, 10, 13, 14} {
		terms.Add(Num2Str(4, uint64(v)))
	}
	primes, profile, err := FindPrimeImplicants(4, true, terms)
	require.NoError(t, err)
	assert.Greater(t, profile.Xor, 0)

	foundParity := false
	for _, p := range primes {
		if p.Xor != 0 {
			foundParity = true
		}
	}
	assert.True(t, foundParity, "expected at least one prime implicant carrying an XOR bit")
}
