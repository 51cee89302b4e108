package testing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual asserts that values are equal, reporting a diff otherwise.
func AssertEqual[T any](t testing.TB, got, want T) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertSuccess asserts that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
}

// Recover runs f and returns the error it panicked with.
// A panic with a non-error value is re-raised.
func Recover(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = e
	}()

	f()

	return nil
}

// AssertPanicsWith asserts that f panics with an error matching target.
func AssertPanicsWith(t testing.TB, target error, f func()) {
	t.Helper()

	err := Recover(f)
	if err == nil {
		t.Fatalf("expected panic with %q", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected panic with %q, got %q", target, err)
	}
}
