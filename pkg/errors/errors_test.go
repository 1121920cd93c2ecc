package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unsupported table shape: %s", "hexagon")

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidShape)
	}
	if !strings.Contains(err.Error(), "hexagon") {
		t.Errorf("Error() = %q, want substring %q", err.Error(), "hexagon")
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidShape)) {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := Wrap(ErrCodeInvalidChart, cause, "failed to load %s", "chart.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Error() = %q, want cause message", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeInvalidShape, "bad shape"),
			code: ErrCodeInvalidShape,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeInvalidShape, "bad shape"),
			code: ErrCodeNotFound,
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("outer: %w", New(ErrCodeFileNotFound, "missing")),
			code: ErrCodeFileNotFound,
			want: true,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("plain"),
			code: ErrCodeInternal,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidTable, "x")); got != ErrCodeInvalidTable {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInvalidTable)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unsupported table shape: blob")
	if got := UserMessage(err); got != "unsupported table shape: blob" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
