// Package errors provides standardized error handling for the peruse
// application. It defines common error kinds, constants, and helper
// functions for consistent error creation, wrapping, and handling.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	UnsupportedEntry
	// Input error kinds
	InvalidInput
	// Config error kinds
	ConfigNotFound
	InvalidConfig
	// Collaborator error kinds
	CollaboratorFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to filesystem entries
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// InputError represents invalid interactive input (out-of-range selection,
// malformed page size). The navigation loop re-prompts on these without
// mutating state.
type InputError struct {
	ApplicationError
	input string
}

// NewInputError creates a new input error
func NewInputError(msg string, input string) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: InvalidInput,
		},
		input: input,
	}
}

// Error returns the input error message
func (e *InputError) Error() string {
	if e.input != "" {
		return fmt.Sprintf("%s: %q", e.msg, e.input)
	}
	return e.ApplicationError.Error()
}

// Input returns the offending input string
func (e *InputError) Input() string {
	return e.input
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

type kinder interface {
	Kind() ErrorKind
}

func hasKind(err error, kind ErrorKind) bool {
	for err != nil {
		if k, ok := err.(kinder); ok && k.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return hasKind(err, FileNotFound)
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	return hasKind(err, FileAccessDenied)
}

// IsUnsupportedEntry checks if the error marks an entry with no actions
func IsUnsupportedEntry(err error) bool {
	return hasKind(err, UnsupportedEntry)
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return hasKind(err, InvalidInput)
}

// IsConfigNotFound checks if the error marks a missing configuration source
func IsConfigNotFound(err error) bool {
	return hasKind(err, ConfigNotFound)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return hasKind(err, InvalidConfig)
}

// IsCollaboratorFailed checks if the error came from an external
// collaborator (editor, delete primitive)
func IsCollaboratorFailed(err error) bool {
	return hasKind(err, CollaboratorFailed)
}
