package errors

import (
	goerrors "errors"
	"fmt"
	"testing"
)

func TestTypeError(t *testing.T) {
	err := NewTypeError("Cannot read property '%s' of undefined", "x")
	if err.Kind() != "Type" {
		t.Errorf("expected kind Type, got %q", err.Kind())
	}
	if err.Message() != "Cannot read property 'x' of undefined" {
		t.Errorf("unexpected message %q", err.Message())
	}
	if err.Error() != "TypeError: Cannot read property 'x' of undefined" {
		t.Errorf("unexpected Error() %q", err.Error())
	}
	if !IsType(err) {
		t.Errorf("expected IsType true")
	}
	if IsInternal(err) {
		t.Errorf("expected IsInternal false")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NewTypeError("t"), "Type"},
		{NewRangeError("r"), "Range"},
		{NewInternalError("i"), "Internal"},
		{goerrors.New("plain"), ""},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	inner := NewTypeError("inner")
	wrapped := fmt.Errorf("while evaluating: %w", inner)
	if !IsType(wrapped) {
		t.Errorf("expected IsType to see through wrapping")
	}
	if KindOf(wrapped) != "Type" {
		t.Errorf("expected KindOf to see through wrapping")
	}
}

func TestCausedBy(t *testing.T) {
	cause := goerrors.New("root cause")
	err := NewInternalError("broken chain").CausedBy(cause)
	if !goerrors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the cause")
	}
}
