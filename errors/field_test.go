package errors

import (
	"testing"
)

func TestFieldNilError(t *testing.T) {
	if err := Field("Owner", nil, "whatever"); err != nil {
		t.Fatalf("a nil error must not produce a field error: %+v", err)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Owner", ErrEmpty, "missing owner"),
		Field("Amount", ErrAmount, "must be positive"),
		Field("Amount", ErrOverflow, "too big"),
	)

	if errs := FieldErrors(err, "Owner"); len(errs) != 1 {
		t.Fatalf("want one Owner error, got %d", len(errs))
	}
	if errs := FieldErrors(err, "Amount"); len(errs) != 2 {
		t.Fatalf("want two Amount errors, got %d", len(errs))
	}
	if errs := FieldErrors(err, "UnlockAt"); len(errs) != 0 {
		t.Fatalf("want no UnlockAt errors, got %d", len(errs))
	}
}

func TestFieldErrorMatchesRoot(t *testing.T) {
	err := Field("Amount", ErrAmount, "must be positive")
	if !ErrAmount.Is(err) {
		t.Fatal("field error must match its root error")
	}
	if code := CodeOf(err); code != ErrAmount.Code() {
		t.Fatalf("want code %d, got %d", ErrAmount.Code(), code)
	}
}

func TestAppendFlattens(t *testing.T) {
	err := Append(
		nil,
		Append(ErrEmpty, ErrState),
		nil,
		ErrAmount,
	)
	multi, ok := err.(multiError)
	if !ok {
		t.Fatalf("want a flat multi error, got %T", err)
	}
	if len(multi) != 3 {
		t.Fatalf("want 3 errors, got %d", len(multi))
	}
}

func TestAppendAllNil(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending only nils must return nil, got %+v", err)
	}
}
