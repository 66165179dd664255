package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/vodleecher/leecher/internal/validation"
	"github.com/vodleecher/leecher/internal/validators"
)

// ChannelQuery returns the channel name as a lookup key: trimmed,
// NFC-normalized and case-folded. Channel logins are case-insensitive.
func (c *Criteria) ChannelQuery() string {
	name := norm.NFC.String(strings.TrimSpace(c.channel))
	return cases.Fold().String(name)
}

// ResolvedURLs returns the validation result of every URL line, in input
// order. ok is false when the criteria are not in URL mode or a line is
// invalid.
func (c *Criteria) ResolvedURLs() (results []validators.ValidationResult, ok bool) {
	if c.searchMode != ModeURLs || validation.IsBlank(c.urls) {
		return nil, false
	}
	return c.resolveURLs()
}

// VideoIDs returns the video IDs named by the active URL or ID list, in
// input order. ok is false in channel mode or when the list is invalid.
func (c *Criteria) VideoIDs() (ids []int64, ok bool) {
	switch c.searchMode {
	case ModeURLs:
		results, resolved := c.ResolvedURLs()
		if !resolved {
			return nil, false
		}
		ids = make([]int64, len(results))
		for i, r := range results {
			ids[i] = r.VideoID
		}
		return ids, true
	case ModeIDs:
		if validation.IsBlank(c.ids) {
			return nil, false
		}
		return parseIDs(c.ids)
	default:
		return nil, false
	}
}
