// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMersenneInitGenrand(t *testing.T) {
	// First output of the reference MT19937 with init_genrand(5489).
	m := &mersenne{}
	m.initGenrand(5489)
	assert.Equal(t, uint32(3499211612), m.Uint32())
}

func TestMersenneMatchesReferenceSeeding(t *testing.T) {
	tests := []struct {
		seed uint64
		want float64
	}{
		{seed: 0, want: 0.8444218515250481},
		{seed: 42, want: 0.6394267984578837},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, newMersenne(tt.seed).Float64(), "seed %d", tt.seed)
	}

	m := newMersenne(7)
	assert.Equal(t, uint32(1390851128), m.Uint32())
	assert.Equal(t, uint32(4071050724), m.Uint32())
}

func TestChooseStaysInRange(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		for _, n := range []int{1, 2, 8, 10, 17} {
			got := choose(seed, n)
			if got < 0 || got >= n {
				t.Fatalf("choose(%d, %d) = %d, out of range", seed, n, got)
			}
		}
	}
	assert.Equal(t, 0, choose(3, 0))
}
