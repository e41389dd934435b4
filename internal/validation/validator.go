// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package validation provides struct validation using go-playground/validator
// v10 behind a thread-safe singleton. Validation failures are translated into
// per-field errors so handlers can map specific fields to the exact
// client-facing messages.
//
// Example:
//
//	req := models.WarpRequest{...}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    if verr.HasField("Entities") { ... }
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// StructError is a collection of field validation failures for one struct.
type StructError struct {
	fields []FieldError
}

// Fields returns all field errors.
func (e *StructError) Fields() []FieldError {
	return e.fields
}

// HasField reports whether any error concerns the named struct field.
func (e *StructError) HasField(name string) bool {
	for _, f := range e.fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

// Error implements the error interface.
func (e *StructError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct using its `validate` tags.
// Returns nil on success.
func ValidateStruct(v interface{}) *StructError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return &StructError{fields: []FieldError{{
			Field:   "",
			Message: "invalid value passed to validation",
		}}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &StructError{fields: []FieldError{{Message: err.Error()}}}
	}

	out := &StructError{}
	for _, fe := range verrs {
		out.fields = append(out.fields, FieldError{
			Field:   fe.StructField(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldMessage builds a readable message for a field error.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.StructField())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.StructField(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.StructField(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.StructField(), fe.Tag())
	}
}
