package errors

import (
	"fmt"
	"testing"
)

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// 2 is taken by ErrUnauthorized.
	Register(2, "duplicate code")
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"root error matches itself": {
			kind:      ErrUnauthorized,
			err:       ErrUnauthorized,
			wantMatch: true,
		},
		"wrapped error matches its root": {
			kind:      ErrState,
			err:       Wrap(ErrState, "lock slot occupied"),
			wantMatch: true,
		},
		"double wrapped error matches its root": {
			kind:      ErrTimeLock,
			err:       Wrap(Wrap(ErrTimeLock, "first"), "second"),
			wantMatch: true,
		},
		"different root does not match": {
			kind:      ErrUnauthorized,
			err:       Wrap(ErrInsufficientFunds, "balance too low"),
			wantMatch: false,
		},
		"stdlib error does not match": {
			kind:      ErrNotFound,
			err:       fmt.Errorf("not found"),
			wantMatch: false,
		},
		"nil matches nil": {
			kind:      nil,
			err:       nil,
			wantMatch: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("want match=%v, got %v", tc.wantMatch, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestCodePreservedByWrapping(t *testing.T) {
	err := Wrapf(ErrOverflow, "balance %d", 42)
	if code := CodeOf(err); code != ErrOverflow.Code() {
		t.Fatalf("want code %d, got %d", ErrOverflow.Code(), code)
	}
}

func TestCodeOfUncategorized(t *testing.T) {
	err := fmt.Errorf("some random failure")
	if code := CodeOf(err); code != ErrInternal.Code() {
		t.Fatalf("want internal code %d, got %d", ErrInternal.Code(), code)
	}
}

func TestWrapPreservesMessage(t *testing.T) {
	err := Wrap(ErrInsufficientFunds, "cannot withdraw 100")
	const want = "cannot withdraw 100: insufficient funds"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
	if redacted := Redact(err); redacted != ErrInternal {
		t.Fatalf("want redacted internal error, got %+v", redacted)
	}
}

func TestStackTraceAttachedOnce(t *testing.T) {
	inner := Wrap(ErrState, "inner")
	if stackTrace(inner) == nil {
		t.Fatal("first wrap must attach a stack trace")
	}
	outer := Wrap(inner, "outer")
	if stackTrace(outer) == nil {
		t.Fatal("stack trace must survive wrapping")
	}
}
