package lens

// Getter is a read-only projection: a lens-shaped value with no setter.
// It is a distinct type so that callers cannot accidentally write
// through a computed view expecting the write to mean something.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter creates a getter from a pure projection function.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// MapLens projects the focus of a lens through a pure function, yielding
// a read-only derived view. There is no inverse of fn, so the result is
// a Getter, not a Lens.
func MapLens[S, A, B any](l Lens[S, A], fn func(A) B) Getter[S, B] {
	return Getter[S, B]{
		get: func(s S) B {
			return fn(l.get(s))
		},
	}
}

// MapGetter projects an existing getter through a further function.
func MapGetter[S, A, B any](g Getter[S, A], fn func(A) B) Getter[S, B] {
	return Getter[S, B]{
		get: func(s S) B {
			return fn(g.get(s))
		},
	}
}

// Get retrieves the projected value.
func (g Getter[S, A]) Get(source S) A {
	return g.get(source)
}

// Lens converts the getter into a lens whose Set discards the write and
// returns the source unchanged. Such a lens deliberately violates the
// Set-Get law: Get(Set(s, a)) yields the projection of s, not a. Use it
// only where a Lens value is required and dropping writes is acceptable.
func (g Getter[S, A]) Lens() Lens[S, A] {
	return Lens[S, A]{
		get: g.get,
		set: func(s S, _ A) S { return s },
	}
}

// ToGetter discards the setter of a lens, leaving its read side.
func ToGetter[S, A any](l Lens[S, A]) Getter[S, A] {
	return Getter[S, A]{get: l.get}
}
