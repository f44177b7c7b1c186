package cli

import "fmt"

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// InputError represents malformed operator input (a non-integer menu
// choice, an out-of-range option). It is always recoverable: the operator
// is told what went wrong and re-prompted.
type InputError struct {
	Input   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// NewInputError creates a new InputError.
func NewInputError(input, message string) *InputError {
	return &InputError{
		Input:   input,
		Message: message,
	}
}
