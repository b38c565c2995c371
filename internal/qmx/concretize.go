package qmx

import (
	"fmt"
	"math/bits"
	"strconv"
)

// maskBitPositions returns the bit indices (mask-space, 0 = LSB) set in m.
func maskBitPositions(m uint64) []int {
	var out []int
	for m != 0 {
		i := bits.TrailingZeros64(m)
		out = append(out, i)
		m &^= uint64(1) << uint(i)
	}
	return out
}

// Concretize enumerates every pure 0/1 minterm (as an integer in
// [0, 2^Bits)) that imp represents, minus anything present in exclude.
// exclude may be nil, meaning nothing is excluded.
//
// Positions fixed to 0/1 contribute their bit directly. '-' positions are
// free. '^'-tagged positions are free subject to their combined parity
// equaling 1; '~'-tagged positions are free subject to parity 0.
func (imp Implicant) Concretize(exclude *Bitset) *Bitset {
	universe := 1 << uint(imp.Bits)
	result := NewBitset(universe)

	variableMask := imp.FullMask() &^ (imp.Ones | imp.Zeros)
	freeBits := maskBitPositions(variableMask)
	base := imp.Ones

	combos := 1
	if len(freeBits) > 0 {
		combos = 1 << uint(len(freeBits))
	}
	for i := 0; i < combos; i++ {
		v := base
		for j, bit := range freeBits {
			if i&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(bit)
			}
		}
		if imp.Xor != 0 && popcount(v&imp.Xor)%2 != 1 {
			continue
		}
		if imp.Xnor != 0 && popcount(v&imp.Xnor)%2 != 0 {
			continue
		}
		idx := int(v)
		if exclude != nil && exclude.Test(idx) {
			continue
		}
		result.Set(idx)
	}
	return result
}

// Permutations parses value, concretizes it, removes anything present in
// exclude, and returns the result as a Set of bitstrings. Malformed
// characters in value are rejected with an error rather than degraded to
// a placeholder symbol (see DESIGN.md's "Open questions resolved" on
// this point).
func Permutations(value string, exclude Set) (Set, error) {
	imp, err := ParseImplicant(value)
	if err != nil {
		return nil, err
	}
	excludeBits, err := setToBitset(imp.Bits, exclude)
	if err != nil {
		return nil, err
	}
	covered := imp.Concretize(excludeBits)
	out := make(Set, covered.Count())
	covered.ForEach(func(i int) {
		out.Add(Num2Str(imp.Bits, uint64(i)))
	})
	return out, nil
}

// setToBitset parses a Set of pure 0/1 bitstrings (all of width nBits)
// into a Bitset over [0, 2^nBits).
func setToBitset(nBits int, set Set) (*Bitset, error) {
	b := NewBitset(1 << uint(nBits))
	for s := range set {
		if len(s) != nBits {
			return nil, fmt.Errorf("qmx: width mismatch: expected %d, got %d for %q", nBits, len(s), s)
		}
		v, err := strconv.ParseUint(s, 2, 64)
		if err != nil {
			return nil, fmt.Errorf("qmx: %q is not a pure bitstring: %w", s, err)
		}
		b.Set(int(v))
	}
	return b, nil
}
