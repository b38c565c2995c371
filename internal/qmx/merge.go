package qmx

import "sort"

// trySubstitute builds a candidate implicant from base by replacing every
// '-' position in base with other's symbol at that position, leaving
// every other position of base untouched. It returns ok=false if the
// result would mix '^' and '~'; such a candidate can never validly
// concretize, so it is simply not viable, not a programmer-error halt
// (see DESIGN.md's "Open questions resolved").
func trySubstitute(base, other Implicant) (Implicant, bool) {
	out := base
	for pos := 0; pos < base.Bits; pos++ {
		if base.SymbolAt(pos) != SymDC {
			continue
		}
		bit := uint64(1) << bitForPos(base.Bits, pos)
		switch other.SymbolAt(pos) {
		case SymOne:
			out.Ones |= bit
		case SymZero:
			out.Zeros |= bit
		case SymXor:
			out.Xor |= bit
		case SymXnor:
			out.Xnor |= bit
		case SymDC:
			// stays a don't-care
		}
	}
	if out.Xor != 0 && out.Xnor != 0 {
		return Implicant{}, false
	}
	return out, true
}

// combine tries replacing a's '-' positions with b (and vice versa),
// keeping only candidates whose concretization exactly equals the union
// of a's and b's coverage (no additions), and returns the
// lower-complexity of the valid candidates. This is strict: most pairs
// of implicants have no valid substitution in either direction, so it
// only catches genuinely orthogonal merges (including the degenerate
// case of two implicants that are already identical).
func combine(a, b Implicant, dc *Bitset) (Implicant, bool) {
	if a.Bits != b.Bits {
		panic("qmx: combine called on implicants of different width")
	}
	pa := a.Concretize(dc)
	pb := b.Concretize(dc)
	union := pa.Union(pb)

	aPrime, okA := trySubstitute(a, b)
	if okA {
		if !aPrime.Concretize(dc).Equal(union) {
			okA = false
		}
	}
	bPrime, okB := trySubstitute(b, a)
	if okB {
		if !bPrime.Concretize(dc).Equal(union) {
			okB = false
		}
	}

	switch {
	case okA && okB:
		if aPrime.Complexity() <= bPrime.Complexity() {
			return aPrime, true
		}
		return bPrime, true
	case okA:
		return aPrime, true
	case okB:
		return bPrime, true
	default:
		return Implicant{}, false
	}
}

// ReduceImplicants runs the implicant-reduction post-pass: repeated
// orthogonal merging of pairs whose combination adds no coverage,
// followed by removal of implicants whose coverage is already subsumed
// by the rest (worst complexity first, one per round).
func ReduceImplicants(nBits int, implicants []Implicant, dc *Bitset) []Implicant {
	current := append([]Implicant(nil), implicants...)

	// Phase 1: orthogonal merging.
	for {
		merged := false
		for i := 0; i < len(current) && !merged; i++ {
			for j := i + 1; j < len(current) && !merged; j++ {
				if c, ok := combine(current[i], current[j], dc); ok {
					next := make([]Implicant, 0, len(current)-1)
					for k, imp := range current {
						if k != i && k != j {
							next = append(next, imp)
						}
					}
					next = append(next, c)
					current = next
					merged = true
				}
			}
		}
		if !merged {
			break
		}
	}

	// Phase 2: redundancy elimination.
	for {
		covs := make([]*Bitset, len(current))
		for i, imp := range current {
			covs[i] = imp.Concretize(dc)
		}

		var redundant []int
		for i := range current {
			others := unionExcept(covs, i)
			if covs[i].IsSubsetOf(others) {
				redundant = append(redundant, i)
			}
		}
		if len(redundant) == 0 {
			break
		}

		sort.Slice(redundant, func(a, b int) bool {
			ia, ib := redundant[a], redundant[b]
			if current[ia].Complexity() != current[ib].Complexity() {
				return current[ia].Complexity() > current[ib].Complexity()
			}
			return current[ia].Key() < current[ib].Key()
		})
		drop := redundant[0]

		next := make([]Implicant, 0, len(current)-1)
		for i, imp := range current {
			if i != drop {
				next = append(next, imp)
			}
		}
		current = next

		if len(current) == 0 {
			allDC := make([]byte, nBits)
			for i := range allDC {
				allDC[i] = byte(SymDC)
			}
			return []Implicant{MustParseImplicant(string(allDC))}
		}
	}

	return current
}

func unionExcept(covs []*Bitset, skip int) *Bitset {
	var out *Bitset
	for i, c := range covs {
		if i == skip {
			continue
		}
		if out == nil {
			out = c.Clone()
		} else {
			out.UnionWith(c)
		}
	}
	if out == nil {
		out = NewBitset(covs[skip].Size())
	}
	return out
}
