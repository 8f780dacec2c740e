package ta

// Parameter normalization is deliberately tolerant: an absent or
// non-positive value degrades to the indicator's documented default instead
// of failing the call. This mirrors the reference behavior and keeps ad hoc
// interactive use ergonomic; invalid parameters never reach the math.

// posInt returns v when strictly positive, otherwise def
func posInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// posFloat returns v when strictly positive, otherwise def
func posFloat(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// orderPair returns the pair in (fast, slow) order, swapping silently when
// the caller passed them reversed so downstream math stays well ordered
func orderPair(fast, slow int) (int, int) {
	if slow < fast {
		return slow, fast
	}
	return fast, slow
}

// minPer resolves the minimum-observations override, defaulting to the full
// window so leading positions stay missing until a window is complete
func minPer(v, length int) int {
	if v > 0 {
		return v
	}
	return length
}

// quadOr substitutes def for any non-positive entry of a period quadruple
func quadOr(v, def [4]int) [4]int {
	for i := range v {
		v[i] = posInt(v[i], def[i])
	}
	return v
}
