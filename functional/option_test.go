package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestOptionMapPreservesStructure verifies Map keeps Some as Some and
// None as None.
func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			o := Some(n)
			fn := func(x int) int { return x * 2 }
			mapped := o.Map(fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None", prop.ForAll(
		func(n int) bool {
			o := None[int]()
			fn := func(x int) int { return x * 2 }
			return o.Map(fn).IsNone()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

// TestOptionPointerRoundTrip verifies FromPtr and ToPtr invert each
// other.
func TestOptionPointerRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("FromPtr(ptr).ToPtr() returns equal value for non-nil", prop.ForAll(
		func(n int) bool {
			ptr := &n
			opt := FromPtr(ptr)
			result := opt.ToPtr()
			return result != nil && *result == n
		},
		gen.Int(),
	))

	properties.Property("FromPtr(nil).ToPtr() returns nil", prop.ForAll(
		func() bool {
			var ptr *int = nil
			opt := FromPtr(ptr)
			return opt.ToPtr() == nil
		},
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() {
			t.Error("expected IsSome to be true")
		}
		if o.IsNone() {
			t.Error("expected IsNone to be false")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() {
			t.Error("expected IsSome to be false")
		}
		if !o.IsNone() {
			t.Error("expected IsNone to be true")
		}
	})

	t.Run("Unwrap panics on None", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		None[int]().Unwrap()
	})

	t.Run("UnwrapOr returns default on None", func(t *testing.T) {
		o := None[int]()
		if o.UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
	})

	t.Run("UnwrapOr returns value on Some", func(t *testing.T) {
		o := Some(42)
		if o.UnwrapOr(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("UnwrapOrElse computes default on None", func(t *testing.T) {
		o := None[int]()
		if o.UnwrapOrElse(func() int { return 7 }) != 7 {
			t.Error("expected computed default")
		}
	})

	t.Run("Filter keeps matching values", func(t *testing.T) {
		o := Some(42)
		filtered := o.Filter(func(x int) bool { return x > 0 })
		if !filtered.IsSome() || filtered.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Filter drops non-matching values", func(t *testing.T) {
		o := Some(-1)
		filtered := o.Filter(func(x int) bool { return x > 0 })
		if !filtered.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("Match dispatches on state", func(t *testing.T) {
		var got int
		Some(5).Match(func(v int) { got = v }, func() { got = -1 })
		if got != 5 {
			t.Errorf("expected 5, got %d", got)
		}
		None[int]().Match(func(v int) { got = v }, func() { got = -1 })
		if got != -1 {
			t.Errorf("expected -1, got %d", got)
		}
	})
}

func TestOptionTransforms(t *testing.T) {
	t.Run("MapOption changes type", func(t *testing.T) {
		o := Some("hello")
		mapped := MapOption(o, func(s string) int { return len(s) })
		if !mapped.IsSome() || mapped.Unwrap() != 5 {
			t.Error("expected Some(5)")
		}
	})

	t.Run("FlatMapOption chains options", func(t *testing.T) {
		o := Some(4)
		result := FlatMapOption(o, func(n int) Option[string] {
			if n%2 == 0 {
				return Some("even")
			}
			return None[string]()
		})
		if !result.IsSome() || result.Unwrap() != "even" {
			t.Error("expected Some(even)")
		}
	})

	t.Run("MatchOption returns branch result", func(t *testing.T) {
		got := MatchOption(Some(3), func(v int) string { return "some" }, func() string { return "none" })
		if got != "some" {
			t.Errorf("expected some, got %s", got)
		}
	})
}
