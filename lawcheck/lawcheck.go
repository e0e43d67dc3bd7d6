// Package lawcheck verifies the three lens laws against concrete sample
// values. It is a development and test oracle, not part of the
// production surface: production packages never import it, test files
// do.
//
// A law failure is a programming defect in a hand-written lens, so the
// checks report it as a descriptive error naming the violated law and
// the values involved. Equality is structural (reflect.DeepEqual).
package lawcheck

import (
	"fmt"
	"reflect"

	"github.com/authcorp/optics/lens"
)

// GetSet verifies l.Set(source, l.Get(source)) == source: writing back
// what was just read changes nothing.
func GetSet[S, A any](l lens.Lens[S, A], source S) error {
	got := l.Set(source, l.Get(source))
	if !reflect.DeepEqual(got, source) {
		return fmt.Errorf("lens violates Get-Set: Set(s, Get(s)) = %#v, want %#v", got, source)
	}
	return nil
}

// SetGet verifies l.Get(l.Set(source, value)) == value: what was set is
// what comes back.
func SetGet[S, A any](l lens.Lens[S, A], source S, value A) error {
	got := l.Get(l.Set(source, value))
	if !reflect.DeepEqual(got, value) {
		return fmt.Errorf("lens violates Set-Get: Get(Set(s, %#v)) = %#v, want %#v", value, got, value)
	}
	return nil
}

// SetSet verifies l.Set(l.Set(source, v1), v2) == l.Set(source, v2): the
// second write wins and the first leaves no trace.
func SetSet[S, A any](l lens.Lens[S, A], source S, v1, v2 A) error {
	twice := l.Set(l.Set(source, v1), v2)
	once := l.Set(source, v2)
	if !reflect.DeepEqual(twice, once) {
		return fmt.Errorf("lens violates Set-Set: Set(Set(s, %#v), %#v) = %#v, want %#v", v1, v2, twice, once)
	}
	return nil
}

// All checks the three laws in order and returns the first violation.
func All[S, A any](l lens.Lens[S, A], source S, v1, v2 A) error {
	if err := GetSet(l, source); err != nil {
		return err
	}
	if err := SetGet(l, source, v1); err != nil {
		return err
	}
	if err := SetGet(l, source, v2); err != nil {
		return err
	}
	return SetSet(l, source, v1, v2)
}

// Isolated verifies structural isolation: source deep-equals snapshot
// after a Set, proving the write did not mutate its argument. Take the
// snapshot before calling Set.
func Isolated[S any](source, snapshot S) error {
	if !reflect.DeepEqual(source, snapshot) {
		return fmt.Errorf("lens mutated its source: %#v, was %#v before Set", source, snapshot)
	}
	return nil
}
