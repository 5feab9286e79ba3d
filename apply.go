package focus

// overrider lets an optic kind supply its own over semantics. Alongside
// optics need this: applying fn to the paired view would transform the
// pair itself rather than each side's focus.
type overrider interface {
	over(s any, fn func(any) any) (any, error)
}

// View reads the focused value out of s through optic.
func View(optic Optic, s any) ReadResult[any] {
	return optic.Get(s)
}

// Set returns a copy of s with the focus replaced by value.
func Set(optic Optic, s any, value any) (any, error) {
	return optic.Put(s, value)
}

// Over reads the focus, applies fn, and writes the result back. If the
// view is Absent or Failed the whole operation fails without invoking
// fn, so failure is side-effect-free.
func Over(optic Optic, s any, fn func(any) any) (any, error) {
	if o, ok := optic.(overrider); ok {
		return o.over(s, fn)
	}
	r := optic.Get(s)
	if r.IsFailed() {
		return nil, r.err
	}
	if r.IsAbsent() {
		return nil, absentErr()
	}
	return optic.Put(s, fn(r.value))
}

// Has reports whether the optic's focus exists in s.
func Has(optic Optic, s any) bool {
	return optic.Get(s).IsFound()
}

// Hasnt reports whether the optic's focus is missing from s.
func Hasnt(optic Optic, s any) bool {
	return !Has(optic, s)
}

// ViewList views each optic in order against the same structure,
// returning one result per optic.
func ViewList(optics []Optic, s any) []ReadResult[any] {
	results := make([]ReadResult[any], len(optics))
	for i, o := range optics {
		results[i] = View(o, s)
	}
	return results
}

// Map applies fn through the optic to every structure whose focus
// exists, passing structures without the focus through unchanged. This
// tolerates heterogeneous collections where not every element has the
// focused field. An element whose focus exists but cannot be written
// aborts the whole operation.
func Map(optic Optic, fn func(any) any, structures []any) ([]any, error) {
	out := make([]any, len(structures))
	for i, s := range structures {
		if Hasnt(optic, s) {
			out[i] = s
			continue
		}
		updated, err := Over(optic, s, fn)
		if err != nil {
			return nil, err
		}
		out[i] = updated
	}
	return out, nil
}

// FixView fixes the optic argument of View, returning a function of the
// structure alone.
func FixView(optic Optic) func(any) ReadResult[any] {
	return func(s any) ReadResult[any] {
		return View(optic, s)
	}
}

// FixOver fixes the optic and transformation arguments of Over.
func FixOver(optic Optic, fn func(any) any) func(any) (any, error) {
	return func(s any) (any, error) {
		return Over(optic, s, fn)
	}
}

// FixSet fixes the optic argument of Set, returning a function of the
// structure and the new value.
func FixSet(optic Optic) func(any, any) (any, error) {
	return func(s any, value any) (any, error) {
		return Set(optic, s, value)
	}
}
