// Package sanitize strips markup from strings headed for page templates.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// Label trims raw and removes every HTML element from it. raw is read as
// HTML, so entities decode: "Fish &amp; Chips" becomes "Fish & Chips" and
// the HTML template engine escapes the result exactly once.
func Label(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := labelSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Labels applies Label to every entry, dropping the ones that end up empty.
func Labels(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		if cleaned := Label(value); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
