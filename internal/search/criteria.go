// Package search holds the criteria used to look up videos for download and
// validates them before a search is dispatched.
//
// A Criteria is owned by the form editing it. Setters fire change
// notifications so the form can re-validate the changed field; Snapshot
// validates everything and hands a detached copy to background work.
package search

import (
	"github.com/vodleecher/leecher/internal/validation"
	"github.com/vodleecher/leecher/internal/validators"
)

// Field names used for error keys and change notifications
const (
	FieldSearchMode = "search_mode"
	FieldVideoKind  = "video_kind"
	FieldChannel    = "channel"
	FieldURLs       = "urls"
	FieldIDs        = "ids"
	FieldLoadLimit  = "load_limit"
)

// Values is a plain copy of every criteria field
type Values struct {
	SearchMode SearchMode `json:"search_mode"`
	VideoKind  VideoKind  `json:"video_kind"`
	Channel    string     `json:"channel,omitempty"`
	URLs       string     `json:"urls,omitempty"`
	IDs        string     `json:"ids,omitempty"`
	LoadLimit  int        `json:"load_limit"`
}

// Criteria describes what to search for. Only the field selected by the
// search mode is validated; the others are kept as typed.
type Criteria struct {
	*validation.Base

	searchMode SearchMode
	videoKind  VideoKind
	channel    string
	urls       string
	ids        string
	loadLimit  int

	registry *validators.Registry
}

// Option configures a Criteria
type Option func(*Criteria)

// WithErrorStore records validation messages in store
func WithErrorStore(store validation.Store) Option {
	return func(c *Criteria) {
		c.Base = validation.NewBase(store)
	}
}

// WithRegistry resolves URL candidates with registry
func WithRegistry(registry *validators.Registry) Option {
	return func(c *Criteria) {
		c.registry = registry
	}
}

// New creates criteria for the given search mode
func New(mode SearchMode, opts ...Option) *Criteria {
	c := &Criteria{
		Base:       validation.NewBase(nil),
		searchMode: mode,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = validators.DefaultRegistry()
	}
	return c
}

func (c *Criteria) SearchMode() SearchMode { return c.searchMode }
func (c *Criteria) VideoKind() VideoKind { return c.videoKind }
func (c *Criteria) Channel() string { return c.channel }
func (c *Criteria) URLs() string { return c.urls }
func (c *Criteria) IDs() string { return c.ids }
func (c *Criteria) LoadLimit() int { return c.loadLimit }

func (c *Criteria) SetSearchMode(mode SearchMode) {
	validation.Set(c.Base, &c.searchMode, mode, FieldSearchMode)
}

func (c *Criteria) SetVideoKind(kind VideoKind) {
	validation.Set(c.Base, &c.videoKind, kind, FieldVideoKind)
}

func (c *Criteria) SetChannel(channel string) {
	validation.Set(c.Base, &c.channel, channel, FieldChannel)
}

// SetURLs sets the newline separated list of video URLs
func (c *Criteria) SetURLs(urls string) {
	validation.Set(c.Base, &c.urls, urls, FieldURLs)
}

// SetIDs sets the newline separated list of video IDs
func (c *Criteria) SetIDs(ids string) {
	validation.Set(c.Base, &c.ids, ids, FieldIDs)
}

func (c *Criteria) SetLoadLimit(limit int) {
	validation.Set(c.Base, &c.loadLimit, limit, FieldLoadLimit)
}

// Apply assigns every field of v through the setters
func (c *Criteria) Apply(v Values) {
	c.SetSearchMode(v.SearchMode)
	c.SetVideoKind(v.VideoKind)
	c.SetChannel(v.Channel)
	c.SetURLs(v.URLs)
	c.SetIDs(v.IDs)
	c.SetLoadLimit(v.LoadLimit)
}

// Values returns a copy of the current field values
func (c *Criteria) Values() Values {
	return Values{
		SearchMode: c.searchMode,
		VideoKind:  c.videoKind,
		Channel:    c.channel,
		URLs:       c.urls,
		IDs:        c.ids,
		LoadLimit:  c.loadLimit,
	}
}

// Clone returns an independent copy with a fresh error store and no
// change listeners.
func (c *Criteria) Clone() *Criteria {
	clone := New(c.searchMode, WithRegistry(c.registry))
	clone.videoKind = c.videoKind
	clone.channel = c.channel
	clone.urls = c.urls
	clone.ids = c.ids
	clone.loadLimit = c.loadLimit
	return clone
}
