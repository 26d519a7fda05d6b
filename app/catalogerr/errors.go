// Package catalogerr defines the errors catalog and inventory writes fail
// with. Callers inspect them with errors.As and errors.Is.
package catalogerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoSuchEntity is returned when a lookup by identifier finds nothing.
var ErrNoSuchEntity = errors.New("no such entity")

// SaveError means persistence rejected a record.
type SaveError struct {
	Entity string
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("could not save %s: %v", e.Entity, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// InputError means a field value is malformed or refers to something that
// does not exist.
type InputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid value of %q provided for the %s field", e.Reason, e.Field)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidationError lists the fields a record failed validation on.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, "; "))
}
