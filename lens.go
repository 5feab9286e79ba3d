package focus

import (
	"fmt"

	"github.com/smpoulsen/focus/container"
)

// Lens is a total optic over a single key or index. "Total" is a
// statement of intent: the key is assumed to exist in well-formed
// input, and a write through a missing key is a BAD_PATH error rather
// than an insert. Constructing a Lens touches no structure; it only
// records the access path.
type Lens struct {
	key any
}

// MakeLens builds a Lens focused on key. The key may be a mapping key,
// a struct field name, or an integer position.
func MakeLens(key any) Lens {
	return Lens{key: key}
}

// Idx builds a Lens focused on position n of a sequence or tuple.
func Idx(n int) Lens {
	return Lens{key: n}
}

// Key returns the access path the lens closes over.
func (l Lens) Key() any {
	return l.key
}

// Get reads the focused value. A missing key is Absent; an unsupported
// container kind is Failed.
func (l Lens) Get(s any) ReadResult[any] {
	return readFrom(container.Get(s, l.key))
}

// Put returns a copy of s with the value at the lens's key replaced.
// The key must already exist in s.
func (l Lens) Put(s any, value any) (any, error) {
	return container.Put(s, l.key, value)
}

// AndThen composes this lens with another optic focused inside it.
func (l Lens) AndThen(next Optic) Optic {
	return Compose(l, next)
}

// String implements fmt.Stringer.
func (l Lens) String() string {
	return fmt.Sprintf("Lens(%v)", l.key)
}

// MakeLenses introspects a mapping-like structure (a map or a struct)
// and returns one Lens per key, indexed by the key's string form.
func MakeLenses(s any) (map[string]Lens, error) {
	keys, err := container.Keys(s)
	if err != nil {
		return nil, err
	}
	lenses := make(map[string]Lens, len(keys))
	for _, k := range keys {
		lenses[fmt.Sprint(k)] = MakeLens(k)
	}
	return lenses, nil
}

var _ Optic = Lens{}
