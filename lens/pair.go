package lens

import "github.com/authcorp/optics/functional"

// First creates a lens for the first element of a pair.
func First[A, B any]() Lens[functional.Pair[A, B], A] {
	return Lens[functional.Pair[A, B], A]{
		get: func(p functional.Pair[A, B]) A { return p.First },
		set: func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: a, Second: p.Second}
		},
	}
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() Lens[functional.Pair[A, B], B] {
	return Lens[functional.Pair[A, B], B]{
		get: func(p functional.Pair[A, B]) B { return p.Second },
		set: func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: p.First, Second: b}
		},
	}
}
