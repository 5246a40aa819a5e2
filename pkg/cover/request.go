// request.go — Immutable request value passed through one generation call.
package cover

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mucteba/podcover/pkg/imaging"
)

// Request carries everything one generation needs. It is constructed once
// per call and never mutated; per-call state like the localized episode
// number is derived inside the composer instead of stashed on shared state.
type Request struct {
	Title    string
	Subtitle string
	// Episode is an optional string of digits. Empty means no episode slot.
	Episode string
	Website string
	// Image is the required cover payload; Logo is optional and nil when the
	// built-in placeholder glyph should render instead.
	Image *imaging.Payload
	Logo  *imaging.Payload
}

// Validate checks the request invariants that no layout stage can recover
// from.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.Image == nil {
		return fmt.Errorf("cover image payload is required")
	}
	return nil
}

// HasEpisode reports whether the bottom bar uses the three-slot layout.
func (r *Request) HasEpisode() bool {
	return r.Episode != ""
}

// OutputName derives the default output filename from the title and episode:
// letters, digits, spaces, hyphens and underscores are kept, spaces become
// underscores, and the result is capped at 25 runes.
func (r *Request) OutputName() string {
	var b strings.Builder
	for _, c := range r.Title {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == ' ' || c == '-' || c == '_' {
			b.WriteRune(c)
		}
	}
	safe := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if runes := []rune(safe); len(runes) > 25 {
		safe = string(runes[:25])
	}

	if r.HasEpisode() {
		return fmt.Sprintf("perfect_podcast_ep%s_%s.svg", r.Episode, safe)
	}
	return fmt.Sprintf("perfect_podcast_%s.svg", safe)
}
