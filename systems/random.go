package systems

import "math/rand"

// Coin is a source of random bits used to randomize serve direction.
type Coin interface {
	Flip() bool
}

// CoinFunc adapts a function to the Coin interface.
type CoinFunc func() bool

// Flip calls f.
func (f CoinFunc) Flip() bool { return f() }

// RandCoin flips a seeded math/rand source.
type RandCoin struct {
	rng *rand.Rand
}

// NewRandCoin creates a coin from the given seed.
func NewRandCoin(seed int64) *RandCoin {
	return &RandCoin{rng: rand.New(rand.NewSource(seed))}
}

// Flip returns true or false with equal probability.
func (c *RandCoin) Flip() bool {
	return c.rng.Intn(2) == 1
}
