// Package htmlsanitize strips dangerous markup from user-supplied text
// before it is persisted.
//
// Need descriptions come from a rich-text editor on the posting form, so
// basic formatting is allowed; everything executable (scripts, event
// handlers, javascript: URLs) is removed. Volunteer suggestions are plain
// text and go through the strict policy, which strips all markup.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans rich text with the UGC policy: formatting elements and
// safe links survive, scripts and event handlers do not.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// PlainText strips all markup, leaving only text content.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strict.Sanitize(s)
}
