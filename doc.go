// Package optics is the root of a small functional-optics library for Go.
//
// The library provides composable, immutable accessors over nested data:
//
//   - lens: the Lens[S, A] core, primitive factories for struct fields,
//     map keys and slice indices, read-only Getter projections, and Iso
//     isomorphisms.
//   - dynpath: dynamic, type-erased path lenses over map[string]any and
//     []any documents, the shapes produced by JSON and YAML decoding.
//   - functional: the Option and Pair support types the optics build on.
//   - lawcheck: the Get-Set / Set-Get / Set-Set law oracle used to
//     validate hand-written lenses in tests.
//
// Every operation is a pure function over immutable values: a Set never
// mutates its argument and returns a new source sharing unmodified
// substructure with the original. Lenses hold no per-call state and are
// safe for concurrent use without synchronization.
package optics
