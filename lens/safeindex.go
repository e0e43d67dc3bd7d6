package lens

import "github.com/authcorp/optics/functional"

// SafeIndex creates a lens for a slice element whose focus is an
// Option[T]: the defined-behavior alternative to Index for positions
// that may not exist.
//
//   - Get returns Some(element) when i is in range, None otherwise.
//   - Set with Some(v) replaces the element at i, copying the slice.
//   - Set with None removes the element at i, shifting later elements
//     left. This is how deletion is expressed: plain Index has no way
//     to say "this element should not exist".
//   - Out-of-range Set of either kind is a no-op returning the input.
//
// Because deletion shifts later elements, Set(s, None) followed by Get
// observes the shifted neighbor, not None; the lens laws hold for the
// replace direction only.
func SafeIndex[T any](i int) Lens[[]T, functional.Option[T]] {
	return Lens[[]T, functional.Option[T]]{
		get: func(s []T) functional.Option[T] {
			if i >= 0 && i < len(s) {
				return functional.Some(s[i])
			}
			return functional.None[T]()
		},
		set: func(s []T, opt functional.Option[T]) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			if opt.IsNone() {
				result := make([]T, 0, len(s)-1)
				result = append(result, s[:i]...)
				result = append(result, s[i+1:]...)
				return result
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = opt.Unwrap()
			return result
		},
	}
}
