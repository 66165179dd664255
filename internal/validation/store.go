// Package validation provides field-scoped error collection and change
// notification for form-backed types. Types embed Base and layer their own
// rules on top of Base.Validate.
package validation

import "strings"

// Store accumulates human-readable error messages keyed by field name.
type Store interface {
	AddError(field, message string)
	ClearErrors(field string)
	ClearAll()
	HasErrors() bool
	FieldErrors(field string) []string
	Fields() []string
}

// Errors is the default in-memory Store. Fields are reported in the order
// their first error was added. Not safe for concurrent use.
type Errors struct {
	order    []string
	messages map[string][]string
}

// NewErrors creates an empty error store
func NewErrors() *Errors {
	return &Errors{
		messages: make(map[string][]string),
	}
}

// AddError records a message for field
func (e *Errors) AddError(field, message string) {
	if _, ok := e.messages[field]; !ok {
		e.order = append(e.order, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// ClearErrors removes every message recorded for field
func (e *Errors) ClearErrors(field string) {
	if _, ok := e.messages[field]; !ok {
		return
	}
	delete(e.messages, field)
	for i, f := range e.order {
		if f == field {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// ClearAll removes every message
func (e *Errors) ClearAll() {
	e.order = nil
	e.messages = make(map[string][]string)
}

// HasErrors reports whether any field has a message
func (e *Errors) HasErrors() bool {
	return len(e.order) > 0
}

// FieldErrors returns a copy of the messages recorded for field
func (e *Errors) FieldErrors(field string) []string {
	msgs := e.messages[field]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Fields returns the fields that currently have messages
func (e *Errors) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
