package lens

// Field creates a lens over one field of a struct record from an
// accessor pair. The field is fixed at compile time by the accessors, so
// there is no absent-field case: the Go type system guarantees the focus
// exists. The set accessor must copy the struct and overwrite one field,
// leaving the rest untouched:
//
//	name := lens.Field(
//		func(u User) string { return u.Name },
//		func(u User, n string) User { u.Name = n; return u },
//	)
//
// Struct receivers are passed by value, so assigning inside the set
// accessor mutates the copy, not the caller's value.
func Field[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// MapKey creates a lens for a map value at a specific key. Get falls
// back to defaultVal when the key is absent; Set shallow-copies the map
// with the one key overwritten, so the original map is never mutated.
func MapKey[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}
