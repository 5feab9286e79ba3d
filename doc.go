// Package focus provides lenses and prisms: composable accessors for
// reading and immutably updating values nested inside larger data
// structures, without hand-written path-walking code.
//
// A Lens focuses a key that is expected to exist; a Prism tolerates an
// absent focus as a normal outcome. Both are plain values built once
// and applied to any number of structures:
//
//	name := focus.MakeLens("name")
//	r := focus.View(name, map[string]any{"name": "Homer"}) // Found("Homer")
//
// Optics compose sequentially with AndThen (or Compose) to reach deeper
// foci, and in parallel with Alongside to read or update two foci of
// the same structure at once:
//
//	street := focus.MakeLens("address").
//		AndThen(focus.MakeLens("locale")).
//		AndThen(focus.MakeLens("street"))
//	updated, err := focus.Set(street, person, "Evergreen Terrace")
//
// Every operation is pure: structures are never mutated, writes return
// fresh copies, and writing through a missing path is a BAD_PATH error
// rather than an insert. Supported container kinds (mappings,
// sequences, tuples, struct records) live in the container subpackage.
package focus
