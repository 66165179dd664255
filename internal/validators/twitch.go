package validators

import (
	"fmt"
	"net/url"
	"strings"
)

// TwitchValidator validates Twitch VOD URLs
type TwitchValidator struct{}

// NewTwitchValidator creates a new Twitch URL validator
func NewTwitchValidator() *TwitchValidator {
	return &TwitchValidator{}
}

// SourceType returns the source type for this validator
func (v *TwitchValidator) SourceType() SourceType {
	return SourceTwitch
}

// CanHandle returns true if the URL appears to be a Twitch URL
func (v *TwitchValidator) CanHandle(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return isTwitchHost(parsed.Host)
}

// Validate validates a Twitch VOD URL and extracts the video ID
func (v *TwitchValidator) Validate(rawURL string) ValidationResult {
	rawURL = strings.TrimSpace(rawURL)

	parsed, id, reason := checkVideoURL(rawURL)
	if reason != "" {
		return ValidationResult{
			Valid:      false,
			SourceType: SourceTwitch,
			URL:        rawURL,
			Error:      reason,
		}
	}

	if !isTwitchHost(parsed.Host) {
		return ValidationResult{
			Valid:      false,
			SourceType: SourceTwitch,
			URL:        rawURL,
			Error:      "not a Twitch URL",
		}
	}

	return ValidationResult{
		Valid:      true,
		SourceType: SourceTwitch,
		VideoID:    id,
		URL:        rawURL,
		Canonical:  fmt.Sprintf("https://www.twitch.tv/videos/%d", id),
	}
}

func isTwitchHost(host string) bool {
	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	return host == "twitch.tv"
}
