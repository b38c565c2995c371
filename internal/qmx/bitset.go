package qmx

import "math/bits"

// Bitset is a fixed-size bitset over [0, size), used to represent the
// concrete coverage (minterm set) of an implicant. Coverage sets can be
// as large as 2^N; representing them as a word-based bitmask makes
// union/subset checks word-at-a-time instead of per-element.
type Bitset struct {
	size  int
	words []uint64
}

// NewBitset allocates an empty bitset able to hold indices [0, size).
func NewBitset(size int) *Bitset {
	return &Bitset{size: size, words: make([]uint64, (size+63)/64)}
}

// Size returns the bitset's declared universe size.
func (b *Bitset) Size() int { return b.size }

// Set marks index i as present.
func (b *Bitset) Set(i int) {
	b.words[i/64] |= uint64(1) << uint(i%64)
}

// Clear removes index i.
func (b *Bitset) Clear(i int) {
	b.words[i/64] &^= uint64(1) << uint(i%64)
}

// Test reports whether index i is present.
func (b *Bitset) Test(i int) bool {
	return b.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// Clone returns an independent copy.
func (b *Bitset) Clone() *Bitset {
	out := &Bitset{size: b.size, words: make([]uint64, len(b.words))}
	copy(out.words, b.words)
	return out
}

// UnionWith sets every bit present in other into b. Both bitsets must
// share the same size.
func (b *Bitset) UnionWith(other *Bitset) {
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// There is no in-place subtraction; Difference builds a fresh bitset.

// Difference returns a new bitset containing b's members that are not in
// other.
func (b *Bitset) Difference(other *Bitset) *Bitset {
	out := &Bitset{size: b.size, words: make([]uint64, len(b.words))}
	for i := range b.words {
		out.words[i] = b.words[i] &^ other.words[i]
	}
	return out
}

// Union returns a new bitset containing the union of b and other.
func (b *Bitset) Union(other *Bitset) *Bitset {
	out := b.Clone()
	out.UnionWith(other)
	return out
}

// IsSubsetOf reports whether every bit set in b is also set in other.
func (b *Bitset) IsSubsetOf(other *Bitset) bool {
	for i := range b.words {
		if b.words[i]&^other.words[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether b and other have identical membership.
func (b *Bitset) Equal(other *Bitset) bool {
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no bit is set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls fn for every set index in ascending order.
func (b *Bitset) ForEach(fn func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			idx := wi*64 + tz
			if idx >= b.size {
				return
			}
			fn(idx)
			w &^= uint64(1) << uint(tz)
		}
	}
}
