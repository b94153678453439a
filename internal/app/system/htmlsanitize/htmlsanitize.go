// Package htmlsanitize strips markup from user-supplied text.
//
// Announcement messages are plain text broadcast to every dashboard, so any
// HTML a caller sends is stripped rather than stored. Plain text passes
// through unchanged.
package htmlsanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes all HTML elements and attributes from s, returning the
// remaining text content. Entities introduced by the sanitizer are decoded
// again so that text without markup round-trips byte for byte.
func PlainText(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}
