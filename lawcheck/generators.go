package lawcheck

import (
	"github.com/authcorp/optics/functional"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values, mixing Some and None.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		return functional.Some(valueGen.Draw(t, "value"))
	})
}

// NoneGen generates None[T] values only.
func NoneGen[T any]() *rapid.Generator[functional.Option[T]] {
	return rapid.Just(functional.None[T]())
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}

// DocumentGen generates small dynamic documents: map[string]any records
// whose values are scalars, nested records, or []any sequences. Depth is
// bounded so shrinking stays fast.
func DocumentGen(depth int) *rapid.Generator[map[string]any] {
	return rapid.Custom(func(t *rapid.T) map[string]any {
		n := rapid.IntRange(1, 4).Draw(t, "fields")
		doc := make(map[string]any, n)
		for i := 0; i < n; i++ {
			doc[rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "key")] = valueAt(t, depth)
		}
		return doc
	})
}

func valueAt(t *rapid.T, depth int) any {
	maxKind := 1
	if depth > 0 {
		maxKind = 3
	}
	kind := rapid.IntRange(0, maxKind).Draw(t, "kind")
	switch kind {
	case 0:
		return rapid.String().Draw(t, "str")
	case 1:
		return rapid.Int().Draw(t, "int")
	case 2:
		n := rapid.IntRange(0, 3).Draw(t, "len")
		seq := make([]any, n)
		for i := range seq {
			seq[i] = valueAt(t, depth-1)
		}
		return seq
	default:
		n := rapid.IntRange(0, 3).Draw(t, "fields")
		m := make(map[string]any, n)
		for i := 0; i < n; i++ {
			m[rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "key")] = valueAt(t, depth-1)
		}
		return m
	}
}
