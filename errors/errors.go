package errors

import (
	"errors"
	"fmt"
)

// These are all precondition errors: they are raised before any filesystem
// access happens. A search that runs but finds nothing is not an error.
var (
	ErrAbsoluteFilename  = errors.New("absolute filename not allowed")
	ErrMissingVariable   = errors.New("path-list variable not present in environment")
	ErrUndefinedVariable = errors.New("path-list variable present but undefined")
)

// VariableError represents an error carrying the name of the path-list
// variable that failed to resolve.
type VariableError interface {
	error
	Variable() string
}

// AbsoluteFilenameError represents a search filename that is absolute.
type AbsoluteFilenameError struct {
	Filename string
}

func (e *AbsoluteFilenameError) Error() string {
	return fmt.Sprintf("filename '%s': must be a relative path", e.Filename)
}

func (e *AbsoluteFilenameError) Unwrap() error {
	return ErrAbsoluteFilename
}

// MissingVariableError represents a path-list variable that is not present in
// the environment.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("environment variable '%s': not present", e.Name)
}

func (e *MissingVariableError) Variable() string {
	return e.Name
}

func (e *MissingVariableError) Unwrap() error {
	return ErrMissingVariable
}

// UndefinedVariableError represents a path-list variable that is present in
// the environment but carries no value. A present variable holding an empty
// string does not produce this error.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("environment variable '%s': present but undefined", e.Name)
}

func (e *UndefinedVariableError) Variable() string {
	return e.Name
}

func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}

func NewAbsoluteFilenameError(filename string) error {
	return &AbsoluteFilenameError{
		Filename: filename,
	}
}

func NewMissingVariableError(name string) error {
	return &MissingVariableError{
		Name: name,
	}
}

func NewUndefinedVariableError(name string) error {
	return &UndefinedVariableError{
		Name: name,
	}
}
