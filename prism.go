package focus

import (
	"fmt"

	"github.com/smpoulsen/focus/container"
)

// Tag values matched by the Ok and Err prisms. A tagged value is a
// two-element container.Tuple whose first element is the tag and whose
// second element is the payload, e.g. container.Tuple{"ok", 5}.
const (
	OkTag  = "ok"
	ErrTag = "error"
)

// Prism is a partial optic: the focused key, index, or variant tag may
// legitimately be absent, and viewing an absent focus is Absent, not a
// failure. Writing through a non-matching focus remains a defined
// BAD_PATH error — a prism never silently rewraps a value it does not
// match.
type Prism struct {
	key any
	tag string
}

// MakePrism builds a Prism over a sequence or tuple position, or a
// mapping key that may be missing.
func MakePrism(path any) Prism {
	return Prism{key: path}
}

// IdxPrism builds a Prism focused on position n of a sequence or tuple.
// Out-of-range access reads as Absent instead of an error.
func IdxPrism(n int) Prism {
	return Prism{key: n}
}

// Ok builds a Prism matching a success-tagged value, focusing its
// payload: Tuple{"ok", v} reads as v.
func Ok() Prism {
	return Prism{tag: OkTag}
}

// Err builds a Prism matching a failure-tagged value, focusing its
// payload: Tuple{"error", reason} reads as reason. A write through a
// matching Err prism reports success like any other optic write; the
// prism normalizes the operation's outcome even though its input
// carried a failure tag.
func Err() Prism {
	return Prism{tag: ErrTag}
}

// Get reads the focused value. A missing index or a non-matching tag is
// Absent; an unsupported container kind is Failed.
func (p Prism) Get(s any) ReadResult[any] {
	if p.tag != "" {
		return p.getTagged(s)
	}
	return readFrom(container.Get(s, p.key))
}

func (p Prism) getTagged(s any) ReadResult[any] {
	t, ok := s.(container.Tuple)
	if !ok {
		return Failed[any](container.UnsupportedShape(s))
	}
	if len(t) != 2 || t[0] != p.tag {
		return Absent[any]()
	}
	return Found(t[1])
}

// Put returns a copy of s with the focus replaced. The view is checked
// first: if the prism does not match s, the write aborts with a
// BAD_PATH error and s is left untouched. A matching prism accepts any
// replacement value regardless of its shape.
func (p Prism) Put(s any, value any) (any, error) {
	if p.tag != "" {
		r := p.getTagged(s)
		if err := r.Err(); err != nil {
			return nil, err
		}
		return container.Tuple{p.tag, value}, nil
	}
	return container.Put(s, p.key, value)
}

// AndThen composes this prism with another optic focused inside it.
func (p Prism) AndThen(next Optic) Optic {
	return Compose(p, next)
}

// String implements fmt.Stringer.
func (p Prism) String() string {
	if p.tag != "" {
		return fmt.Sprintf("Prism(%s)", p.tag)
	}
	return fmt.Sprintf("Prism(%v)", p.key)
}

var _ Optic = Prism{}
