package validators

import (
	"net/url"
	"strconv"
	"strings"
)

// videosSegment marks the path segment that precedes a numeric video ID.
const videosSegment = "videos/"

// Reasons reported in ValidationResult.Error
const (
	reasonNotAbsolute  = "not an absolute URL"
	reasonShortPath    = "URL path has fewer than two segments"
	reasonNoVideosPath = "URL path has no videos/ segment"
	reasonBadVideoID   = "videos/ segment is not followed by a positive video ID"
)

// ParseVideoID parses a video ID. Valid IDs are positive and fit in a
// signed 32-bit integer; surrounding whitespace and a leading '+' are allowed.
func ParseVideoID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseAbsolute parses a hierarchical URL that carries a scheme.
func parseAbsolute(rawURL string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Scheme == "" || parsed.Opaque != "" {
		return nil, false
	}
	return parsed, true
}

// pathSegments splits an escaped URL path the way it is read left to right:
// "/videos/123" yields "/", "videos/", "123". An empty path is "/".
func pathSegments(path string) []string {
	if path == "" {
		path = "/"
	}

	var segments []string
	for path != "" {
		idx := strings.IndexByte(path, '/')
		if idx < 0 {
			segments = append(segments, path)
			break
		}
		segments = append(segments, path[:idx+1])
		path = path[idx+1:]
	}
	return segments
}

// videoIDFromSegments finds the first videos/ segment and parses the segment
// after it. Only the first marker counts: a bad ID after it is not retried
// against later markers, and a path without any marker has no ID.
func videoIDFromSegments(segments []string) (int64, string) {
	for i, segment := range segments {
		if !strings.EqualFold(segment, videosSegment) {
			continue
		}
		if i+1 >= len(segments) || strings.TrimSpace(segments[i+1]) == "" {
			return 0, reasonBadVideoID
		}
		id, ok := ParseVideoID(strings.Trim(segments[i+1], "/"))
		if !ok {
			return 0, reasonBadVideoID
		}
		return id, ""
	}
	return 0, reasonNoVideosPath
}

// checkVideoURL applies the shared videos/<id> shape rule.
// It returns the parsed URL and video ID, or a non-empty reason.
func checkVideoURL(rawURL string) (*url.URL, int64, string) {
	parsed, ok := parseAbsolute(rawURL)
	if !ok {
		return nil, 0, reasonNotAbsolute
	}

	segments := pathSegments(parsed.EscapedPath())
	if len(segments) < 2 {
		return parsed, 0, reasonShortPath
	}

	id, reason := videoIDFromSegments(segments)
	return parsed, id, reason
}

// VideoPathValidator accepts any absolute URL whose path contains
// videos/<id>. It is the fallback for hosts without a dedicated validator.
type VideoPathValidator struct{}

// NewVideoPathValidator creates a host-agnostic video URL validator
func NewVideoPathValidator() *VideoPathValidator {
	return &VideoPathValidator{}
}

// SourceType returns the source type for this validator
func (v *VideoPathValidator) SourceType() SourceType {
	return SourceGeneric
}

// CanHandle always returns true
func (v *VideoPathValidator) CanHandle(rawURL string) bool {
	return true
}

// Validate validates the URL shape and extracts the video ID
func (v *VideoPathValidator) Validate(rawURL string) ValidationResult {
	rawURL = strings.TrimSpace(rawURL)

	_, id, reason := checkVideoURL(rawURL)
	if reason != "" {
		return ValidationResult{
			Valid:      false,
			SourceType: SourceGeneric,
			URL:        rawURL,
			Error:      reason,
		}
	}

	return ValidationResult{
		Valid:      true,
		SourceType: SourceGeneric,
		VideoID:    id,
		URL:        rawURL,
	}
}
