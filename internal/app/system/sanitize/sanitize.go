// Package sanitize strips HTML from free-form text fields before storage.
// Captions, CTAs, and hashtags are plain text; anything tag-shaped in them
// is dropped rather than escaped into the document store.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.StrictPolicy()

// Text removes all HTML elements from s, leaving only text content.
func Text(s string) string {
	return policy.Sanitize(s)
}
