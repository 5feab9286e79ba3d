package focus_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/smpoulsen/focus"
)

// genNested draws a three-level nested mapping and the key path into it.
func genNested(t *rapid.T) (map[string]any, [3]string) {
	keyGen := rapid.StringMatching(`[a-z]{1,6}`)
	var keys [3]string
	keys[0] = keyGen.Draw(t, "k0")
	keys[1] = keyGen.Draw(t, "k1")
	keys[2] = keyGen.Draw(t, "k2")

	s := map[string]any{
		keys[0]: map[string]any{
			keys[1]: map[string]any{
				keys[2]: rapid.Int().Draw(t, "leaf"),
			},
		},
	}
	return s, keys
}

func TestComposeAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, keys := genNested(t)
		v := rapid.Int().Draw(t, "v")

		a := focus.MakeLens(keys[0])
		b := focus.MakeLens(keys[1])
		c := focus.MakeLens(keys[2])

		left := focus.Compose(focus.Compose(a, b), c)
		right := focus.Compose(a, focus.Compose(b, c))

		lv := focus.View(left, s)
		rv := focus.View(right, s)
		if lv.IsFound() != rv.IsFound() || (lv.IsFound() && lv.Unwrap() != rv.Unwrap()) {
			t.Fatalf("view differs by grouping: %v vs %v", lv, rv)
		}

		ls, lerr := focus.Set(left, s, v)
		rs, rerr := focus.Set(right, s, v)
		if (lerr == nil) != (rerr == nil) {
			t.Fatalf("set error differs by grouping: %v vs %v", lerr, rerr)
		}
		if diff := cmp.Diff(ls, rs); diff != "" {
			t.Fatalf("set result differs by grouping (-left +right):\n%s", diff)
		}

		double := func(x any) any { return x.(int) * 2 }
		lo, lerr := focus.Over(left, s, double)
		ro, rerr := focus.Over(right, s, double)
		if (lerr == nil) != (rerr == nil) {
			t.Fatalf("over error differs by grouping: %v vs %v", lerr, rerr)
		}
		if diff := cmp.Diff(lo, ro); diff != "" {
			t.Fatalf("over result differs by grouping (-left +right):\n%s", diff)
		}
	})
}

func TestNonCreation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, keys := genNested(t)
		missing := rapid.StringMatching(`[A-Z]{1,6}`).Draw(t, "missing")

		// The middle stage of the path does not exist.
		broken := focus.MakeLens(keys[0]).
			AndThen(focus.MakeLens(missing)).
			AndThen(focus.MakeLens(keys[2]))

		before := focus.View(focus.MakeLens(keys[0]), s)
		_, err := focus.Set(broken, s, 99)
		if !errors.Is(err, focus.ErrBadPath) {
			t.Fatalf("expected ErrBadPath, got %v", err)
		}
		after := focus.View(focus.MakeLens(keys[0]), s)
		if diff := cmp.Diff(before.Unwrap(), after.Unwrap()); diff != "" {
			t.Fatalf("failed set modified the structure (-want +got):\n%s", diff)
		}
	})
}

func TestAlongside(t *testing.T) {
	seq := []any{1, 2, 3, 4, 5, 6}

	t.Run("view yields both foci as a pair", func(t *testing.T) {
		r := focus.View(focus.Alongside(focus.Idx(0), focus.Idx(3)), seq)
		if !r.IsFound() {
			t.Fatalf("expected Found, got %v", r)
		}
		pair, ok := r.Unwrap().(focus.Pair[any, any])
		if !ok {
			t.Fatalf("expected Pair, got %T", r.Unwrap())
		}
		if pair.First != 1 || pair.Second != 4 {
			t.Errorf("expected (1, 4), got (%v, %v)", pair.First, pair.Second)
		}
	})

	t.Run("a missing side carries its error in the pair", func(t *testing.T) {
		r := focus.View(focus.Alongside(focus.Idx(0), focus.Idx(9)), seq)
		pair := r.Unwrap().(focus.Pair[any, any])
		if pair.First != 1 {
			t.Errorf("expected 1, got %v", pair.First)
		}
		err, ok := pair.Second.(error)
		if !ok || !errors.Is(err, focus.ErrBadPath) {
			t.Errorf("expected a bad path error element, got %v", pair.Second)
		}
	})

	t.Run("set updates both structures independently", func(t *testing.T) {
		out, err := focus.Set(focus.Alongside(focus.Idx(0), focus.Idx(3)), seq, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pair := out.(focus.Pair[any, any])
		if diff := cmp.Diff([]any{0, 2, 3, 4, 5, 6}, pair.First); diff != "" {
			t.Errorf("first side (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]any{1, 2, 3, 0, 5, 6}, pair.Second); diff != "" {
			t.Errorf("second side (-want +got):\n%s", diff)
		}
	})

	t.Run("over applies the function to each side's focus", func(t *testing.T) {
		out, err := focus.Over(focus.Alongside(focus.Idx(0), focus.Idx(3)), seq, func(v any) any {
			return v.(int) * 10
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pair := out.(focus.Pair[any, any])
		if diff := cmp.Diff([]any{10, 2, 3, 4, 5, 6}, pair.First); diff != "" {
			t.Errorf("first side (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]any{1, 2, 3, 40, 5, 6}, pair.Second); diff != "" {
			t.Errorf("second side (-want +got):\n%s", diff)
		}
	})

	t.Run("set fails when either side is missing", func(t *testing.T) {
		// Writes are all-or-nothing: unlike view, a failing side is not
		// carried in the pair, whichever side it is.
		_, err := focus.Set(focus.Alongside(focus.Idx(0), focus.Idx(9)), seq, 0)
		if !errors.Is(err, focus.ErrBadPath) {
			t.Errorf("expected ErrBadPath, got %v", err)
		}
		_, err = focus.Set(focus.Alongside(focus.Idx(9), focus.Idx(0)), seq, 0)
		if !errors.Is(err, focus.ErrBadPath) {
			t.Errorf("expected ErrBadPath for a failing first side, got %v", err)
		}
		if diff := cmp.Diff([]any{1, 2, 3, 4, 5, 6}, seq); diff != "" {
			t.Errorf("failed set modified the input (-want +got):\n%s", diff)
		}
	})

	t.Run("works across heterogeneous optics", func(t *testing.T) {
		homer := map[string]any{"name": "Homer", "age": 39}
		r := focus.View(focus.Alongside(focus.MakeLens("name"), focus.MakeLens("age")), homer)
		pair := r.Unwrap().(focus.Pair[any, any])
		if pair.First != "Homer" || pair.Second != 39 {
			t.Errorf("expected (Homer, 39), got (%v, %v)", pair.First, pair.Second)
		}
	})
}

func TestFailurePropagatesVerbatim(t *testing.T) {
	// A shape failure deep in a chain surfaces unchanged.
	o := focus.MakeLens("a").AndThen(focus.MakeLens("b"))
	r := focus.View(o, map[string]any{"a": 42})
	if !r.IsFailed() {
		t.Fatalf("expected Failed, got %v", r)
	}
	if !errors.Is(r.Err(), focus.ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", r.Err())
	}

	_, err := focus.Set(o, map[string]any{"a": 42}, 1)
	if !errors.Is(err, focus.ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape from set, got %v", err)
	}
}
