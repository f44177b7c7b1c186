package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("database.driver", "unsupported driver")
	if !strings.Contains(err.Error(), "database.driver") {
		t.Errorf("Error() = %q, want field name included", err.Error())
	}

	bare := NewConfigError("", "failed to load config")
	if strings.Contains(bare.Error(), "in ") {
		t.Errorf("Error() = %q, want no field prefix for empty field", bare.Error())
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("database locked")
	err := NewCommandError("shell", cause)

	if !strings.Contains(err.Error(), "shell") {
		t.Errorf("Error() = %q, want command name included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
}

func TestInputError(t *testing.T) {
	err := NewInputError("abc", "expected a whole number")

	var inputErr *InputError
	if !errors.As(error(err), &inputErr) {
		t.Fatal("errors.As() should match *InputError")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Errorf("Error() = %q, want offending input included", err.Error())
	}
}
