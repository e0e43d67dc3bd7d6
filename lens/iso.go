package lens

// Iso represents an isomorphism between two types: a pair of functions
// that convert losslessly in both directions.
type Iso[S, A any] struct {
	get     func(S) A
	reverse func(A) S
}

// NewIso creates an isomorphism from its two directions. Callers must
// ensure reverse(get(s)) == s and get(reverse(a)) == a; the Lens built
// from the iso is lawful exactly when that holds.
func NewIso[S, A any](get func(S) A, reverse func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverse: reverse}
}

// Get converts forward.
func (i Iso[S, A]) Get(source S) A {
	return i.get(source)
}

// Reverse converts backward.
func (i Iso[S, A]) Reverse(value A) S {
	return i.reverse(value)
}

// Flip swaps the directions of the isomorphism.
func (i Iso[S, A]) Flip() Iso[A, S] {
	return Iso[A, S]{get: i.reverse, reverse: i.get}
}

// Lens converts the iso to a lens. Set ignores the old source and
// rebuilds it from the new focus, which is exactly right for a lossless
// conversion: the focus carries the whole source.
func (i Iso[S, A]) Lens() Lens[S, A] {
	return Lens[S, A]{
		get: i.get,
		set: func(_ S, a A) S { return i.reverse(a) },
	}
}

// ComposeIso chains two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		get:     func(s S) B { return inner.get(outer.get(s)) },
		reverse: func(b B) S { return outer.reverse(inner.reverse(b)) },
	}
}
