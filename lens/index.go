package lens

// Index creates a lens for a slice element at a specific index.
//
// Get is direct indexing: it panics when i is out of range, exactly as
// s[i] does. Callers who need a defined out-of-range Get should use
// IndexOr or SafeIndex instead.
//
// Set copies the slice with position i replaced. When i is out of range
// Set returns the input slice unchanged: a silent no-op rather than an
// error, so composed lenses never have to handle a set failure.
func Index[T any](i int) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			return s[i]
		},
		set: func(s []T, v T) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return result
		},
	}
}

// IndexOr creates a lens for a slice element at a specific index with a
// default. Get returns defaultVal when i is out of range, making both
// directions total; Set behaves exactly as Index's.
func IndexOr[T any](i int, defaultVal T) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if i >= 0 && i < len(s) {
				return s[i]
			}
			return defaultVal
		},
		set: func(s []T, v T) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return result
		},
	}
}
