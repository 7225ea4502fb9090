// Package mersenne implements the 32-bit Mersenne Twister (MT19937) with the
// reference init_genrand and init_by_array seeding procedures.
//
// Output is bit-for-bit identical to the reference C implementation for the
// same seed, which makes generated fixtures reproducible across runs and
// across implementations. The generator is not suitable for cryptographic
// use and a Twister must not be used from multiple goroutines at once.
package mersenne

import (
	"encoding/binary"
	"time"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// DefaultSeed is used when a draw is requested from a Twister that was
	// never seeded.
	DefaultSeed uint32 = 5489

	arraySeed uint32 = 19650218
)

// Twister holds the MT19937 state vector.
//
// The zero value is an unseeded generator: its first draw seeds it with
// DefaultSeed, matching the reference implementation.
type Twister struct {
	mt     [n]uint32
	mti    int
	seeded bool
}

// New returns a Twister seeded from the current time in milliseconds.
func New() *Twister {
	return NewWithSeed(uint32(time.Now().UnixMilli()))
}

// NewWithSeed returns a Twister seeded with a single word.
func NewWithSeed(seed uint32) *Twister {
	t := &Twister{}
	t.Seed(seed)
	return t
}

// NewWithArray returns a Twister seeded with an ordered sequence of words.
// An empty key leaves the generator unseeded.
func NewWithArray(key []uint32) *Twister {
	t := &Twister{}
	if len(key) > 0 {
		t.SeedArray(key)
	}
	return t
}

// Seed initializes the state vector from a single word (init_genrand).
// The next draw regenerates the whole vector.
func (t *Twister) Seed(seed uint32) {
	t.mt[0] = seed
	for i := 1; i < n; i++ {
		s := t.mt[i-1] ^ (t.mt[i-1] >> 30)
		t.mt[i] = 1812433253*s + uint32(i)
	}
	t.mti = n
	t.seeded = true
}

// SeedArray initializes the state vector from an ordered key (init_by_array).
// SeedArray panics if key is empty.
func (t *Twister) SeedArray(key []uint32) {
	if len(key) == 0 {
		panic("mersenne: SeedArray with empty key")
	}
	t.Seed(arraySeed)

	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		s := t.mt[i-1] ^ (t.mt[i-1] >> 30)
		t.mt[i] = (t.mt[i] ^ (s * 1664525)) + key[j] + uint32(j) // non linear
		i++
		j++
		if i >= n {
			t.mt[0] = t.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		s := t.mt[i-1] ^ (t.mt[i-1] >> 30)
		t.mt[i] = (t.mt[i] ^ (s * 1566083941)) - uint32(i) // non linear
		i++
		if i >= n {
			t.mt[0] = t.mt[n-1]
			i = 1
		}
	}

	// MSB is 1, so the initial state is never all zeros.
	t.mt[0] = 0x80000000
}

// twist regenerates all n words of the state vector.
func (t *Twister) twist() {
	mag01 := [2]uint32{0, matrixA}

	var y uint32
	kk := 0
	for ; kk < n-m; kk++ {
		y = (t.mt[kk] & upperMask) | (t.mt[kk+1] & lowerMask)
		t.mt[kk] = t.mt[kk+m] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < n-1; kk++ {
		y = (t.mt[kk] & upperMask) | (t.mt[kk+1] & lowerMask)
		t.mt[kk] = t.mt[kk+(m-n)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (t.mt[n-1] & upperMask) | (t.mt[0] & lowerMask)
	t.mt[n-1] = t.mt[m-1] ^ (y >> 1) ^ mag01[y&1]

	t.mti = 0
}

// Uint32 returns the next word on [0, 0xffffffff] (genrand_int32).
func (t *Twister) Uint32() uint32 {
	if !t.seeded {
		t.Seed(DefaultSeed)
	}
	if t.mti >= n {
		t.twist()
	}

	y := t.mt[t.mti]
	t.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Int31 returns the next word with its top bit dropped, on [0, 0x7fffffff].
func (t *Twister) Int31() int32 {
	return int32(t.Uint32() >> 1)
}

// RealClosed returns a float64 on the closed interval [0, 1].
func (t *Twister) RealClosed() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967295.0)
}

// Float64 returns a float64 on the half-open interval [0, 1).
func (t *Twister) Float64() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967296.0)
}

// RealOpen returns a float64 on the open interval (0, 1).
func (t *Twister) RealOpen() float64 {
	return (float64(t.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Res53 returns a float64 on [0, 1) with 53-bit resolution. It consumes two
// words.
func (t *Twister) Res53() float64 {
	a := t.Uint32() >> 5
	b := t.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uint64 returns two consecutive words, the first one in the high half.
// It makes a Twister usable as a math/rand/v2 Source.
func (t *Twister) Uint64() uint64 {
	hi := uint64(t.Uint32())
	return hi<<32 | uint64(t.Uint32())
}

// Read fills p with successive words in little-endian order. A trailing
// partial word consumes a full draw. It always returns len(p), nil.
func (t *Twister) Read(p []byte) (int, error) {
	var buf [4]byte
	i := 0
	for ; i+4 <= len(p); i += 4 {
		binary.LittleEndian.PutUint32(p[i:], t.Uint32())
	}
	if i < len(p) {
		binary.LittleEndian.PutUint32(buf[:], t.Uint32())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
