package noise

import "math/rand"

// Source produces broadband samples from an explicitly seeded generator.
// Statistical whiteness is the requirement, not unpredictability, so a fast
// non-cryptographic generator is deliberate. A Source is owned by one engine
// and advanced only from the render path; it must never be shared.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a source with a deterministic seed. Equal seeds yield
// equal sample sequences.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns the next broadband sample in [-1, 1).
func (s *Source) Sample() float32 {
	return s.rng.Float32()*2 - 1
}
