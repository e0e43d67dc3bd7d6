// Package lens provides generic lens optics for immutable data access.
//
// A Lens[S, A] focuses on one sub-value A of a larger value S through a
// pair of pure functions: Get reads the focus, Set returns a new S with
// the focus replaced and everything else untouched. Lenses built from
// the factories in this package satisfy the three lens laws:
//
//	Get-Set: l.Set(s, l.Get(s)) == s
//	Set-Get: l.Get(l.Set(s, a)) == a
//	Set-Set: l.Set(l.Set(s, a1), a2) == l.Set(s, a2)
//
// and Compose preserves them. Lenses are immutable and carry no per-call
// state, so any number of goroutines may share one.
package lens

// Lens provides access to nested immutable structures.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions. Both must be pure:
// neither may mutate its arguments, and set must return a value equal to
// source everywhere except the focused position.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value and returns the new
// structure. Equivalent to l.Set(source, fn(l.Get(source))).
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Compose creates a lens focusing deeper: the focus of outer becomes the
// source of inner. Composition is associative.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Compose3 chains three lenses. Shorthand for Compose(Compose(l1, l2), l3).
func Compose3[S, A, B, C any](l1 Lens[S, A], l2 Lens[A, B], l3 Lens[B, C]) Lens[S, C] {
	return Compose(Compose(l1, l2), l3)
}

// Identity creates an identity lens: Get returns the source unchanged and
// Set replaces the whole source.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}
