// Package dynpath builds lenses over dynamic documents: values of type
// any holding map[string]any records and []any sequences, the shapes
// produced by decoding JSON or YAML into an untyped interface.
//
// The package is the type-erased escape hatch of the library. Statically
// typed lenses composed with lens.Compose keep full compile-time safety
// and should be preferred; dynpath trades that safety for the ability to
// fold a runtime sequence of keys and indices into one accessor.
//
// Missing-structure policy, applied uniformly to every segment kind: a
// key absent from its map, an index outside its slice, or a segment
// applied to a document of the wrong shape yields nil from Get and makes
// Set return the source unchanged. No segment ever panics and no segment
// creates structure that was not already there.
package dynpath

import "github.com/authcorp/optics/lens"

// Step is one segment of a document path.
type Step struct {
	lens lens.Lens[any, any]
}

// Key creates a step focusing the named field of a map[string]any
// record.
func Key(name string) Step {
	return Step{lens: lens.NewLens(
		func(doc any) any {
			if m, ok := doc.(map[string]any); ok {
				return m[name]
			}
			return nil
		},
		func(doc any, value any) any {
			m, ok := doc.(map[string]any)
			if !ok {
				return doc
			}
			if _, exists := m[name]; !exists {
				return doc
			}
			result := make(map[string]any, len(m))
			for k, v := range m {
				result[k] = v
			}
			result[name] = value
			return result
		},
	)}
}

// At creates a step focusing element i of an []any sequence.
func At(i int) Step {
	return Step{lens: lens.NewLens(
		func(doc any) any {
			if s, ok := doc.([]any); ok && i >= 0 && i < len(s) {
				return s[i]
			}
			return nil
		},
		func(doc any, value any) any {
			s, ok := doc.([]any)
			if !ok || i < 0 || i >= len(s) {
				return doc
			}
			result := make([]any, len(s))
			copy(result, s)
			result[i] = value
			return result
		},
	)}
}

// Lens returns the single-segment lens for the step.
func (s Step) Lens() lens.Lens[any, any] {
	return s.lens
}

// Path folds a sequence of steps, left to right, into one composed lens.
// An empty call yields the identity lens on the whole document.
func Path(steps ...Step) lens.Lens[any, any] {
	result := lens.Identity[any]()
	for _, step := range steps {
		result = lens.Compose(result, step.lens)
	}
	return result
}

// Of builds a path from untyped segments: strings become Key steps and
// ints become At steps. It panics on any other segment type, which is a
// construction-time programming defect, not a data-dependent condition.
func Of(segments ...any) lens.Lens[any, any] {
	steps := make([]Step, 0, len(segments))
	for _, seg := range segments {
		switch v := seg.(type) {
		case string:
			steps = append(steps, Key(v))
		case int:
			steps = append(steps, At(v))
		default:
			panic("dynpath: path segment must be a string key or int index")
		}
	}
	return Path(steps...)
}
