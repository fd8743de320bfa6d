package upstream

import (
	"bytes"
	"encoding/json"
	"strings"
)

// isJSONResponse decides whether a response passes through as JSON. The
// content type or the body prefix has to look like JSON, and the body has to
// actually be well-formed; the upstream's anti-bot layer is known to serve
// HTML challenges with a 200 and a JSON content type.
func isJSONResponse(contentType string, body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}
	looksJSON := strings.Contains(strings.ToLower(contentType), "json") ||
		trimmed[0] == '{' || trimmed[0] == '['
	return looksJSON && json.Valid(trimmed)
}

// snippet returns a bounded, printable prefix of a blocked body for diagnostics.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > snippetBytes {
		s = s[:snippetBytes]
	}
	return s
}
