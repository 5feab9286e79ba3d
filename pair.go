package focus

import "fmt"

// Pair carries the two results an alongside optic produces: the paired
// views on read, or the two independently updated structures on write.
// It is a plain 2-tuple, not a mergeable structure — alongside never
// recombines its sides into one value.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair from its two elements.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both elements, mirroring a two-value return.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// String implements fmt.Stringer.
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
