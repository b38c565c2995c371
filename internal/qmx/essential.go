package qmx

import "sort"

// weightOf returns the per-character weight that is added to 4*coverage
// to form the rank: '-':8, '^':4, '~':2, '1':1, '0':0.
func weightOf(sym Symbol) int {
	switch sym {
	case SymDC:
		return 8
	case SymXor:
		return 4
	case SymXnor:
		return 2
	case SymOne:
		return 1
	default: // SymZero
		return 0
	}
}

func charWeight(imp Implicant) int {
	w := 0
	for pos := 0; pos < imp.Bits; pos++ {
		w += weightOf(imp.SymbolAt(pos))
	}
	return w
}

type rankedImplicant struct {
	imp  Implicant
	cov  *Bitset
	rank int
}

// SelectEssential computes cov(t) = permutations(t) \ dc for every prime
// implicant, ranks each by 4*|cov(t)| + weight(t), and greedily covers in
// descending-rank order (ties broken by descending string order) until
// every minterm covered by some term's coverage is accounted for. If the
// result is empty (a tautology over don't-cares only), returns a single
// all-don't-care implicant.
func SelectEssential(nBits int, terms []Implicant, dc *Bitset) []Implicant {
	ranked := make([]rankedImplicant, 0, len(terms))
	for _, t := range terms {
		cov := t.Concretize(dc)
		rank := 4*cov.Count() + charWeight(t)
		ranked = append(ranked, rankedImplicant{imp: t, cov: cov, rank: rank})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank > ranked[j].rank
		}
		return ranked[i].imp.Key() > ranked[j].imp.Key()
	})

	covered := NewBitset(1 << uint(nBits))
	var selected []Implicant
	for _, r := range ranked {
		if !r.cov.IsSubsetOf(covered) {
			selected = append(selected, r.imp)
			covered.UnionWith(r.cov)
		}
	}

	if len(selected) == 0 {
		allDC := make([]byte, nBits)
		for i := range allDC {
			allDC[i] = byte(SymDC)
		}
		selected = []Implicant{MustParseImplicant(string(allDC))}
	}
	return selected
}
