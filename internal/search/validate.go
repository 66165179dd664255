package search

import (
	"strings"

	apperrors "github.com/vodleecher/leecher/internal/errors"
	"github.com/vodleecher/leecher/internal/validation"
	"github.com/vodleecher/leecher/internal/validators"
)

// Messages recorded for invalid fields
const (
	MsgChannelRequired = "Please specify a channel name!"
	MsgURLsRequired    = "Please specify one or more video URLs!"
	MsgURLsInvalid     = "One or more URLs are invalid!"
	MsgIDsRequired     = "Please specify one or more video IDs!"
	MsgIDsInvalid      = "One or more IDs are invalid!"
)

// Validate checks field, or every field when field is blank, and records
// problems in the error store. Bad input never produces an error return;
// a non-nil error means the search mode itself is not a known value.
func (c *Criteria) Validate(field string) error {
	c.Base.Validate(field)

	switch c.searchMode {
	case ModeChannel:
		if validation.Targets(field, FieldChannel) && validation.IsBlank(c.channel) {
			c.AddError(FieldChannel, MsgChannelRequired)
		}
	case ModeURLs:
		if validation.Targets(field, FieldURLs) {
			c.validateURLs()
		}
	case ModeIDs:
		if validation.Targets(field, FieldIDs) {
			c.validateIDs()
		}
	default:
		return apperrors.InvalidSearchMode(int(c.searchMode))
	}
	return nil
}

func (c *Criteria) validateURLs() {
	if validation.IsBlank(c.urls) {
		c.AddError(FieldURLs, MsgURLsRequired)
		return
	}
	if _, ok := c.resolveURLs(); !ok {
		c.AddError(FieldURLs, MsgURLsInvalid)
	}
}

func (c *Criteria) validateIDs() {
	if validation.IsBlank(c.ids) {
		c.AddError(FieldIDs, MsgIDsRequired)
		return
	}
	if _, ok := parseIDs(c.ids); !ok {
		c.AddError(FieldIDs, MsgIDsInvalid)
	}
}

// resolveURLs validates each URL line in order and stops at the first
// invalid one.
func (c *Criteria) resolveURLs() ([]validators.ValidationResult, bool) {
	lines := splitLines(c.urls)
	results := make([]validators.ValidationResult, 0, len(lines))
	for _, line := range lines {
		result := c.registry.Validate(line)
		if !result.Valid {
			return nil, false
		}
		results = append(results, result)
	}
	return results, true
}

// parseIDs parses each ID line in order and stops at the first invalid one.
func parseIDs(s string) ([]int64, bool) {
	lines := splitLines(s)
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		id, ok := validators.ParseVideoID(line)
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// splitLines splits s on newlines, drops a trailing carriage return from
// each line and discards empty lines. Whitespace-only lines are kept.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
