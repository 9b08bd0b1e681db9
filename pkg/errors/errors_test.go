package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidToken, "bad token: %s", "xyz")
	if err.Code != ErrCodeInvalidToken {
		t.Errorf("code = %s", err.Code)
	}
	if err.Message != "bad token: xyz" {
		t.Errorf("message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("cause should be nil")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "upload %s", "data.csv")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "NETWORK_ERROR: upload data.csv: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidInput, "empty token")
	if !Is(err, ErrCodeInvalidInput) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidInput) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsWrappedInPlainError(t *testing.T) {
	inner := New(ErrCodeUnauthorized, "token rejected")
	outer := fmt.Errorf("login: %w", inner)
	if !Is(outer, ErrCodeUnauthorized) {
		t.Error("Is() should unwrap through plain wrappers")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInternal, "boom")); got != ErrCodeInternal {
		t.Errorf("GetCode = %s", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad id")); got != "bad id" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("raw")); got != "raw" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
