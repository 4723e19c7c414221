package ecs

import "math/bits"

// bitset is a growable presence set over dense entity indexes.
type bitset []uint64

func (b *bitset) set(i int) {
	w := i >> 6
	if w >= len(*b) {
		grown := make(bitset, w+1)
		copy(grown, *b)
		*b = grown
	}
	(*b)[w] |= 1 << uint(i&63)
}

func (b bitset) has(i int) bool {
	w := i >> 6
	if i < 0 || w >= len(b) {
		return false
	}
	return b[w]&(1<<uint(i&63)) != 0
}

func (b bitset) clear(i int) {
	w := i >> 6
	if i < 0 || w >= len(b) {
		return
	}
	b[w] &^= 1 << uint(i&63)
}

func (b bitset) reset() {
	for i := range b {
		b[i] = 0
	}
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b bitset) clone() bitset {
	out := make(bitset, len(b))
	copy(out, b)
	return out
}

// and keeps only bits also present in o.
func (b bitset) and(o bitset) bitset {
	if len(o) < len(b) {
		for i := len(o); i < len(b); i++ {
			b[i] = 0
		}
		b = b[:len(o)]
	}
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

// andNot drops every bit present in o.
func (b bitset) andNot(o bitset) bitset {
	n := len(b)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		b[i] &^= o[i]
	}
	return b
}

// each visits set bits in ascending order.
func (b bitset) each(fn func(i int)) {
	for w, word := range b {
		for word != 0 {
			t := bits.TrailingZeros64(word)
			fn(w<<6 + t)
			word &= word - 1
		}
	}
}
