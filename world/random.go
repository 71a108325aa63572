package world

import "math/bits"

// RandomSource yields the random words that drive dithering and tree
// placement. Imports consume words in a fixed order, so equal seeds over
// equal inputs replay identical grids.
type RandomSource interface {
	// Next returns the next 32-bit word.
	Next() uint32
	// NextRange returns a value in [0, limit). A word is consumed even
	// when limit is 0, in which case the result is 0.
	NextRange(limit uint32) uint32
}

// Randomizer is the default RandomSource. The generator is fixed so that
// a seed written into a saved game or shared with another host replays
// the same sequence.
type Randomizer struct {
	state [2]uint32
}

// NewRandomizer returns a Randomizer seeded with seed.
func NewRandomizer(seed uint32) *Randomizer {
	r := &Randomizer{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator state.
func (r *Randomizer) SetSeed(seed uint32) {
	r.state[0] = seed
	r.state[1] = seed
}

// Next returns the next word of the sequence.
func (r *Randomizer) Next() uint32 {
	s := r.state[0]
	t := r.state[1]

	r.state[0] = s + bits.RotateLeft32(t^0x1234567f, -7) + 1
	r.state[1] = bits.RotateLeft32(s, -3) - 1
	return r.state[1]
}

// NextRange scales the next word into [0, limit).
func (r *Randomizer) NextRange(limit uint32) uint32 {
	return uint32(uint64(r.Next()) * uint64(limit) >> 32)
}
