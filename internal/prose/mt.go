// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prose

import "math/bits"

// MT19937 parameters.
const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// mersenne is a 32-bit Mersenne Twister seeded the way the reference diary
// tool seeds its generator: init_by_array over the little-endian 32-bit words
// of the absolute seed value. Selection indices therefore match the reference
// output for every day number.
type mersenne struct {
	mt  [mtN]uint32
	mti int
}

func newMersenne(seed uint64) *mersenne {
	key := []uint32{uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		key = append(key, hi)
	}
	m := &mersenne{}
	m.initByArray(key)
	return m
}

func (m *mersenne) initGenrand(s uint32) {
	m.mt[0] = s
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.mti = mtN
}

func (m *mersenne) initByArray(key []uint32) {
	m.initGenrand(19650218)
	i, j := 1, 0
	k := max(mtN, len(key))
	for ; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
	}
	m.mt[0] = 0x80000000
}

func (m *mersenne) twist() {
	for kk := 0; kk < mtN; kk++ {
		y := (m.mt[kk] & mtUpperMask) | (m.mt[(kk+1)%mtN] & mtLowerMask)
		next := m.mt[(kk+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.mt[kk] = next
	}
	m.mti = 0
}

// Uint32 returns the next tempered output.
func (m *mersenne) Uint32() uint32 {
	if m.mti >= mtN {
		m.twist()
	}
	y := m.mt[m.mti]
	m.mti++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a 53-bit float in [0, 1) built from two outputs.
func (m *mersenne) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// below returns a uniform value in [0, n) by rejection sampling on the top
// bitlen(n) bits of each output. n must be below 2^32.
func (m *mersenne) below(n int) int {
	if n <= 0 {
		return 0
	}
	k := bits.Len(uint(n))
	for {
		r := int(m.Uint32() >> (32 - k))
		if r < n {
			return r
		}
	}
}

// choose seeds a fresh generator with seed and picks an index into a pool of
// size n.
func choose(seed uint64, n int) int {
	return newMersenne(seed).below(n)
}
