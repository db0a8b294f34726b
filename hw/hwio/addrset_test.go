package hwio

import (
	"math/rand/v2"
	"testing"
)

func TestAddrSet(t *testing.T) {
	var s addrSet
	var ref [0x10000]bool

	check := func(t *testing.T) {
		t.Helper()
		for a := range 0x10000 {
			if s.has(uint16(a)) != ref[a] {
				t.Fatalf("has(0x%04X) = %t, want %t", a, s.has(uint16(a)), ref[a])
			}
		}
	}

	ranges := [][2]uint16{
		{0, 0},
		{0x3F, 0x40},
		{0x10, 0x2F},
		{0x0000, 0x1FFF},
		{0xFFFF, 0xFFFF},
		{0x8000, 0xFFFF},
		{0x4000, 0x4017},
	}
	for i, r := range ranges {
		on := i%3 != 2
		s.mark(r[0], r[1], on)
		for a := int(r[0]); a <= int(r[1]); a++ {
			ref[a] = on
		}
		check(t)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		lo := uint16(rng.UintN(0x10000))
		hi := lo + uint16(rng.UintN(uint(0xFFFF-lo)+1))
		on := rng.IntN(2) == 0
		s.mark(lo, hi, on)
		for a := int(lo); a <= int(hi); a++ {
			ref[a] = on
		}
	}
	check(t)
}
