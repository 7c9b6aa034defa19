package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("not found")

// FieldErrors maps a payload field to its validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

// BulkValidationError reports one FieldErrors per submitted record, in order.
// Valid records carry an empty map.
type BulkValidationError struct {
	Records []FieldErrors
}

func (e *BulkValidationError) Error() string {
	invalid := make([]string, 0)
	for i, rec := range e.Records {
		if len(rec) > 0 {
			invalid = append(invalid, fmt.Sprintf("%d", i))
		}
	}
	return "bulk validation failed for records: " + strings.Join(invalid, ", ")
}

// ReferentialIntegrityError is returned when deleting a category or district
// that doctors still reference.
type ReferentialIntegrityError struct {
	Entity  string
	ID      int64
	Doctors int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: referenced by %d doctor(s)", e.Entity, e.ID, e.Doctors)
}

type InvalidQueryError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Param, e.Reason)
}
