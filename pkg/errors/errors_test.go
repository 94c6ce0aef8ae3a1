package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCellCount, "row has %d values", 5)

	if err.Code != ErrCodeInvalidCellCount {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCellCount)
	}

	if err.Message != "row has 5 values" {
		t.Errorf("Message = %v, want %v", err.Message, "row has 5 values")
	}

	expected := "INVALID_CELL_COUNT: row has 5 values"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidDate, cause, "column %q", "Shipped")

	if err.Code != ErrCodeInvalidDate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDate)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeChartNotFound, "test"),
			code:     ErrCodeChartNotFound,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeChartNotFound, "test"),
			code:     ErrCodeDashboardNotFound,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeChartNotFound,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeInvalidDate, New(ErrCodeInvalidData, "inner"), "outer"),
			code:     ErrCodeInvalidDate,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidLabel, "x")); got != ErrCodeInvalidLabel {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidLabel)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidLabel, "label cannot be empty")); got != "label cannot be empty" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
