package hwio

// addrSet is a set of addresses of the 16-bit address space, one bit per
// address. The zero value is the empty set.
type addrSet [0x10000 / 64]uint64

// spanMask returns the bits of word w covered by [lo, hi].
func spanMask(w int, lo, hi int) uint64 {
	first, last := w*64, w*64+63
	lo, hi = max(lo, first), min(hi, last)
	n := uint(hi - lo + 1)
	if n == 64 {
		return ^uint64(0)
	}
	return (uint64(1)<<n - 1) << uint(lo-first)
}

// mark adds (on) or removes (!on) all addresses in [lo, hi] to the set.
func (s *addrSet) mark(lo, hi uint16, on bool) {
	for w := int(lo) / 64; w <= int(hi)/64; w++ {
		m := spanMask(w, int(lo), int(hi))
		if on {
			s[w] |= m
		} else {
			s[w] &^= m
		}
	}
}

func (s *addrSet) has(addr uint16) bool {
	return s[addr/64]&(1<<(addr%64)) != 0
}
