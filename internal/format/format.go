// Package format renders response bodies for display. Formatting is a
// view concern only: the stored body always stays raw.
package format

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// IsJSON reports whether a Content-Type header value denotes JSON.
func IsJSON(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}

// IsXML reports whether a Content-Type header value denotes XML.
func IsXML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/xml") || strings.Contains(ct, "text/xml")
}

// Body returns the display form of a response body. JSON bodies are
// pretty-printed with two-space indentation; everything else (XML,
// HTML, plain text) passes through untouched. Bodies that claim to be
// JSON but do not parse also pass through rather than erroring.
func Body(contentType, body string) string {
	if !IsJSON(contentType) {
		return body
	}
	return prettyJSON(body)
}

func prettyJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !json.Valid([]byte(trimmed)) {
		return raw
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return raw
	}
	return buf.String()
}
