package simerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewNotFound_IsErrNotFound(t *testing.T) {
	err := NewNotFound("team %q", "kc")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is(err, ErrNotFound) to be true")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("expected errors.Is(err, ErrConflict) to be false")
	}
}

func TestKindOf(t *testing.T) {
	err := NewConflict("game %s already completed", "g1")
	kind, ok := KindOf(err)
	if !ok || kind != Conflict {
		t.Fatalf("KindOf() = %v, %v; want Conflict, true", kind, ok)
	}
}

func TestKindOf_NonTypedError(t *testing.T) {
	_, ok := KindOf(fmt.Errorf("plain error"))
	if ok {
		t.Fatalf("expected ok=false for a non-simerrors error")
	}
}

func TestWrap_PreservesUnderlyingError(t *testing.T) {
	cause := errors.New("replay disagreed with stored score")
	err := Wrap(Unreachable, cause, "record mismatch for team %s", "buf")

	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected errors.Is(err, ErrUnreachable) to be true")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the wrapped cause to be reachable via errors.Is")
	}
}

func TestError_Message(t *testing.T) {
	err := NewInvalidArgument("week %d out of range", 23)
	want := "InvalidArgument: week 23 out of range"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
