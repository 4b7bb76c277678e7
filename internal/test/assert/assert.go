package assert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal asserts exp == got, diffing with go-cmp.
// Nil and empty slices compare equal: a zero length payload is the same
// payload whether or not it has a backing array.
func Equal(t testing.TB, name string, exp, got interface{}) {
	t.Helper()

	diff := cmp.Diff(exp, got, cmpopts.EquateEmpty(), cmp.Exporter(func(reflect.Type) bool {
		return true
	}))
	if diff != "" {
		t.Fatalf("unexpected %v (-want +got):\n%v", name, diff)
	}
}

// Success asserts err == nil.
func Success(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatal(err)
	}
}

// Error asserts err != nil.
func Error(t testing.TB, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected error")
	}
}

// ErrorAs asserts errors.As(got, target).
func ErrorAs(t testing.TB, got error, target interface{}) {
	t.Helper()

	if !errors.As(got, target) {
		t.Fatalf("expected error of type %T but got %v", target, got)
	}
}

// Contains asserts the fmt.Sprint(v) contains sub.
func Contains(t testing.TB, v interface{}, sub string) {
	t.Helper()

	s := fmt.Sprint(v)
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}
