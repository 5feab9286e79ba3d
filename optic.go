package focus

import "github.com/smpoulsen/focus/container"

// Optic is a composable getter/setter pair focused on part of a larger
// structure. An optic is immutable pure data: it closes only over an
// access path, never over a structure instance, so the same optic can
// be applied to any number of structures.
type Optic interface {
	// Get attempts to read the focused value out of s.
	Get(s any) ReadResult[any]

	// Put returns a copy of s with the focus replaced by value. Writing
	// through a missing focus is a BAD_PATH error, never an insert.
	Put(s any, value any) (any, error)

	// AndThen sequentially composes this optic with next, so that next
	// focuses inside this optic's focus.
	AndThen(next Optic) Optic
}

// Composed chains two optics: the inner optic operates inside the
// outer's focus. Composition is associative, so a~>b~>c reads the same
// regardless of grouping.
type Composed struct {
	outer Optic
	inner Optic
}

// Compose builds the sequential composition of outer and inner.
func Compose(outer, inner Optic) Composed {
	return Composed{outer: outer, inner: inner}
}

// Get reads through both stages, returning the first non-Found state.
func (c Composed) Get(s any) ReadResult[any] {
	r := c.outer.Get(s)
	if !r.IsFound() {
		return r
	}
	return c.inner.Get(r.value)
}

// Put reads the outer focus, writes value into it through the inner
// optic, then splices the updated inner structure back through the
// outer optic. A missing intermediate focus fails the whole write.
func (c Composed) Put(s any, value any) (any, error) {
	r := c.outer.Get(s)
	if err := r.Err(); err != nil {
		return nil, err
	}
	updated, err := c.inner.Put(r.value, value)
	if err != nil {
		return nil, err
	}
	return c.outer.Put(s, updated)
}

// AndThen extends the chain with another optic.
func (c Composed) AndThen(next Optic) Optic {
	return Compose(c, next)
}

// AlongsideOptic applies two optics independently at the top level of
// the same structure. It is a parallel-application combinator, not a
// record splitter: Put yields a Pair of two updated structures, and the
// caller must not assume the pair can be merged back into one value.
type AlongsideOptic struct {
	first  Optic
	second Optic
}

// Alongside builds the parallel composition of a and b.
func Alongside(a, b Optic) AlongsideOptic {
	return AlongsideOptic{first: a, second: b}
}

// Get always yields Found(Pair[any, any]). Each element is the raw
// focused value when that side's view succeeds; otherwise it is the
// side's error value, keeping the two-element shape total.
func (a AlongsideOptic) Get(s any) ReadResult[any] {
	return Found[any](NewPair(sideValue(a.first.Get(s)), sideValue(a.second.Get(s))))
}

func sideValue(r ReadResult[any]) any {
	if r.IsFound() {
		return r.value
	}
	return r.Err()
}

// Put writes the same value through both optics independently and
// returns a Pair of the two updated structures. Unlike Get, a failing
// side is not carried as a pair element: a write must produce two valid
// structures or none, so the first side's failure aborts the whole
// write and s is left untouched.
func (a AlongsideOptic) Put(s any, value any) (any, error) {
	s1, err := a.first.Put(s, value)
	if err != nil {
		return nil, err
	}
	s2, err := a.second.Put(s, value)
	if err != nil {
		return nil, err
	}
	return NewPair(s1, s2), nil
}

// AndThen sequentially composes the pair with another optic.
func (a AlongsideOptic) AndThen(next Optic) Optic {
	return Compose(a, next)
}

// over applies fn to each side's focus independently. Implements the
// internal dispatch hook used by Over.
func (a AlongsideOptic) over(s any, fn func(any) any) (any, error) {
	s1, err := Over(a.first, s, fn)
	if err != nil {
		return nil, err
	}
	s2, err := Over(a.second, s, fn)
	if err != nil {
		return nil, err
	}
	return NewPair(s1, s2), nil
}

var _ Optic = Composed{}
var _ Optic = AlongsideOptic{}

// absentErr is the error returned when a write targets a missing focus.
func absentErr() error {
	return container.BadPath(nil, "focus not present in structure")
}
