package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStringIncludesOpMessageAndCode(t *testing.T) {
	err := NewError(CodeConflict, "Operations.Maritime.Create", "operation code already exists: OP-2024-0001", nil)
	want := "Operations.Maritime.Create: operation code already exists: OP-2024-0001 (conflict)"
	if got := err.Error(); got != want {
		t.Fatalf("Error(): want=%q got=%q", want, got)
	}

	bare := NewError(CodeInternal, "", "", nil)
	if got := bare.Error(); got != "internal" {
		t.Fatalf("bare Error(): want=internal got=%q", got)
	}
}

func TestWrapKeepsCauseOnChain(t *testing.T) {
	cause := fmt.Errorf("vessel not found: 7b0c")
	err := Wrap(CodeNotFound, "Operations.Maritime.Create", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("cause must stay reachable via errors.Is")
	}
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		t.Fatalf("expected *Error on chain")
	}
	if aggErr.Message != cause.Error() {
		t.Fatalf("message: want=%q got=%q", cause.Error(), aggErr.Message)
	}

	if Wrap(CodeNotFound, "op", nil) != nil {
		t.Fatalf("Wrap(nil) must be nil")
	}
}

func TestIsCodeAndCodeOf(t *testing.T) {
	err := NewError(CodeValidation, "op", "fecha_fin must be strictly after fecha_inicio", nil)
	if !IsCode(err, CodeValidation) {
		t.Fatalf("IsCode should match the carried code")
	}
	if IsCode(err, CodeConflict) {
		t.Fatalf("IsCode must not match a different code")
	}

	wrapped := fmt.Errorf("while creating: %w", err)
	if CodeOf(wrapped) != CodeValidation {
		t.Fatalf("CodeOf must see through wrapping: got %q", CodeOf(wrapped))
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatalf("CodeOf on a plain error must be empty")
	}
}
