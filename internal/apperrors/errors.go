package apperrors

import "fmt"

// ErrUnknownOption is returned when a preference key is not one of the recognized options.
type ErrUnknownOption struct {
	Key string
}

// Error implements the error interface.
func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("unknown option %q", e.Key)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnknownOption) Is(target error) bool {
	_, ok := target.(*ErrUnknownOption)
	return ok
}

// NewUnknownOptionError creates a new ErrUnknownOption.
func NewUnknownOptionError(key string) *ErrUnknownOption {
	return &ErrUnknownOption{Key: key}
}

// ErrInvalidValue is returned when a textual value cannot be parsed into an option's type.
type ErrInvalidValue struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ErrInvalidValue) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for option %q: %v", e.Value, e.Key, e.Err)
	}
	return fmt.Sprintf("invalid value %q for option %q", e.Value, e.Key)
}

// Unwrap returns the underlying parse error.
func (e *ErrInvalidValue) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidValue) Is(target error) bool {
	_, ok := target.(*ErrInvalidValue)
	return ok
}

// NewInvalidValueError creates a new ErrInvalidValue.
func NewInvalidValueError(key, value string, err error) *ErrInvalidValue {
	return &ErrInvalidValue{Key: key, Value: value, Err: err}
}

// ErrReadOnlyOption is returned when a write is attempted on an option that has no setter.
type ErrReadOnlyOption struct {
	Key string
}

// Error implements the error interface.
func (e *ErrReadOnlyOption) Error() string {
	return fmt.Sprintf("option %q is read-only", e.Key)
}

// Is allows for error checking with errors.Is().
func (e *ErrReadOnlyOption) Is(target error) bool {
	_, ok := target.(*ErrReadOnlyOption)
	return ok
}

// NewReadOnlyOptionError creates a new ErrReadOnlyOption.
func NewReadOnlyOptionError(key string) *ErrReadOnlyOption {
	return &ErrReadOnlyOption{Key: key}
}

// ErrUnknownProvider is returned when no storage provider is registered under a name.
type ErrUnknownProvider struct {
	Name       string
	Registered []string
}

// Error implements the error interface.
func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("storage: unknown provider %q (registered: %v)", e.Name, e.Registered)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnknownProvider) Is(target error) bool {
	_, ok := target.(*ErrUnknownProvider)
	return ok
}
