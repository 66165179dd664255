package search

import (
	"fmt"
	"strings"

	apperrors "github.com/vodleecher/leecher/internal/errors"
)

// SearchMode selects which raw text field drives the search
type SearchMode int

const (
	ModeChannel SearchMode = iota
	ModeURLs
	ModeIDs
)

var searchModeNames = map[SearchMode]string{
	ModeChannel: "channel",
	ModeURLs:    "urls",
	ModeIDs:     "ids",
}

func (m SearchMode) String() string {
	if name, ok := searchModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SearchMode(%d)", int(m))
}

// Valid reports whether m is one of the known modes
func (m SearchMode) Valid() bool {
	_, ok := searchModeNames[m]
	return ok
}

// ParseSearchMode converts a mode name to a SearchMode
func ParseSearchMode(s string) (SearchMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range searchModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, apperrors.BadRequest(fmt.Sprintf("unknown search mode: %q", s))
}

// MarshalText implements encoding.TextMarshaler
func (m SearchMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, apperrors.InvalidSearchMode(int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *SearchMode) UnmarshalText(text []byte) error {
	mode, err := ParseSearchMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// VideoKind narrows which videos a search returns. It is passed through
// to the search unchanged.
type VideoKind int

const (
	KindBroadcast VideoKind = iota
	KindHighlight
	KindUpload
)

var videoKindNames = map[VideoKind]string{
	KindBroadcast: "broadcast",
	KindHighlight: "highlight",
	KindUpload:    "upload",
}

func (k VideoKind) String() string {
	if name, ok := videoKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("VideoKind(%d)", int(k))
}

// ParseVideoKind converts a kind name to a VideoKind
func ParseVideoKind(s string) (VideoKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range videoKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, apperrors.InvalidVideoKind(s)
}

// MarshalText implements encoding.TextMarshaler
func (k VideoKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *VideoKind) UnmarshalText(text []byte) error {
	kind, err := ParseVideoKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
