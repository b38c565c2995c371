package qmx

// Result is the outcome of a Simplify/SimplifyLOS call. A zero Result
// (Ok == false) is the "no result" sentinel for malformed or empty
// input, distinct from Ok == true with an empty Implicants set, and
// distinct from the tautology {"-"×N}.
type Result struct {
	Ok         bool
	Implicants Set
}

// NoResult is the sentinel returned when the input is empty or otherwise
// unprocessable. This is not an error: callers check Ok, not err.
var NoResult = Result{}

// Simplify is the integer-input driver: ones and dc are lists of
// non-negative minterm indices. If numBits is nil, the width is
// inferred as ceil(log2(max(ones ∪ dc)+1)). If ones ∪ dc is empty,
// Simplify returns NoResult.
func Simplify(ones, dc []int, numBits *int, useXor bool) Result {
	r, _ := SimplifyWithProfile(ones, dc, numBits, useXor)
	return r
}

// SimplifyWithProfile is Simplify plus the merge-attempt Profile.
func SimplifyWithProfile(ones, dc []int, numBits *int, useXor bool) (Result, Profile) {
	if len(ones) == 0 && len(dc) == 0 {
		return NoResult, Profile{}
	}

	n := 0
	if numBits != nil {
		n = *numBits
	} else {
		all := make([]int, 0, len(ones)+len(dc))
		all = append(all, ones...)
		all = append(all, dc...)
		n = BitsNeeded(all)
	}

	onesStrs := make([]string, len(ones))
	for i, v := range ones {
		onesStrs[i] = Num2Str(n, uint64(v))
	}
	dcStrs := make([]string, len(dc))
	for i, v := range dc {
		dcStrs[i] = Num2Str(n, uint64(v))
	}

	return runPipeline(n, onesStrs, dcStrs, useXor)
}

// SimplifyLOS is the bitstring-input driver: ones and dc are iterables
// of pre-stringified minterms, all of which must share the same width
// (else NoResult). If numBits is given it must also match that width.
func SimplifyLOS(ones, dc []string, numBits *int, useXor bool) Result {
	r, _ := SimplifyLOSWithProfile(ones, dc, numBits, useXor)
	return r
}

// SimplifyLOSWithProfile is SimplifyLOS plus the merge-attempt Profile.
func SimplifyLOSWithProfile(ones, dc []string, numBits *int, useXor bool) (Result, Profile) {
	if len(ones) == 0 && len(dc) == 0 {
		return NoResult, Profile{}
	}

	width := -1
	for _, s := range ones {
		if width == -1 {
			width = len(s)
		} else if len(s) != width {
			return NoResult, Profile{}
		}
	}
	for _, s := range dc {
		if width == -1 {
			width = len(s)
		} else if len(s) != width {
			return NoResult, Profile{}
		}
	}
	if numBits != nil && *numBits != width {
		return NoResult, Profile{}
	}

	return runPipeline(width, ones, dc, useXor)
}

// runPipeline finds prime implicants over ones ∪ dc, selects an
// essential cover against dc, then post-pass reduces the cover.
func runPipeline(nBits int, ones, dc []string, useXor bool) (Result, Profile) {
	terms := make(Set, len(ones)+len(dc))
	for _, s := range ones {
		terms.Add(s)
	}
	for _, s := range dc {
		terms.Add(s)
	}

	primes, profile, err := FindPrimeImplicants(nBits, useXor, terms)
	if err != nil {
		return NoResult, profile
	}

	dcBitset, err := setToBitset(nBits, NewSet(dc...))
	if err != nil {
		return NoResult, profile
	}

	essential := SelectEssential(nBits, primes, dcBitset)
	reduced := ReduceImplicants(nBits, essential, dcBitset)

	out := make(Set, len(reduced))
	for _, imp := range reduced {
		out.Add(imp.Key())
	}
	return Result{Ok: true, Implicants: out}, profile
}
