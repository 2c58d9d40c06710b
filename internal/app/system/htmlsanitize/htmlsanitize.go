// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-generated
// content before it is stored. Review comments and recruiter admin notes
// both pass through here.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows the usual user-generated-content tags (paragraphs,
// emphasis, links, lists) and nothing executable.
var policy = bluemonday.UGCPolicy()

// strict strips all markup, leaving plain text.
var strict = bluemonday.StrictPolicy()

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting markup is preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// PlainText strips all HTML, for fields that should never carry markup
// (names, titles, admin notes).
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strict.Sanitize(s)
}
