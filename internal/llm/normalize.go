package llm

import (
	"bytes"
	"encoding/json"
)

// Text-generation APIs are not consistent about the shape of a successful
// response: some return an array of candidates, some a single object, and
// some a bare string. ExtractText reduces all of them to plain text with
// an ordered list of shape matchers, so callers never deal with the wire
// format. Adding support for a new provider shape means appending a
// matcher, not growing a conditional.

// shapeMatcher attempts to pull generated text out of a decoded JSON
// value. It reports false when the value does not have its shape.
type shapeMatcher func(v any) (string, bool)

// shapeMatchers are tried in priority order.
var shapeMatchers = []shapeMatcher{
	matchFirstElementGeneratedText,
	matchGeneratedTextField,
	matchBareString,
}

// ExtractText normalizes a completion response body into plain text.
// Bodies that are not JSON at all are returned verbatim; JSON that
// matches no known shape is returned in compact form as a last resort.
func ExtractText(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	for _, match := range shapeMatchers {
		if text, ok := match(v); ok {
			return text
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}

// matchFirstElementGeneratedText handles [{"generated_text": "..."}, ...].
func matchFirstElementGeneratedText(v any) (string, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return "", false
	}
	return matchGeneratedTextField(arr[0])
}

// matchGeneratedTextField handles {"generated_text": "..."}.
func matchGeneratedTextField(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	text, ok := obj["generated_text"].(string)
	return text, ok
}

// matchBareString handles a JSON string response.
func matchBareString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
