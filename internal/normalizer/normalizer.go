// Package normalizer recovers structured JSON from free-form generative
// model output. The model is not contract-bound to emit clean JSON: responses
// arrive fenced, prefixed with commentary, or plain malformed. Normalize is a
// total function from string to a tagged Value - it never fails, it degrades.
package normalizer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind tags the shape Normalize managed to recover
type Kind int

const (
	// Unparsed means no structured value could be recovered; Raw holds the
	// original text. Consumers must treat this as a decode failure, not an error.
	Unparsed Kind = iota

	// ParsedObject means the response decoded to a single JSON object
	ParsedObject

	// ParsedArray means the response decoded to an array of JSON objects
	ParsedArray
)

// Value is the result of normalizing one model response
type Value struct {
	Kind   Kind
	Object map[string]any   // set when Kind == ParsedObject
	Array  []map[string]any // set when Kind == ParsedArray
	Raw    string           // the original, unmodified input
}

var (
	fenceRe  = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	arrayRe  = regexp.MustCompile(`\[\s*(?:\{[\s\S]*?\}\s*,?\s*)+\]`)
	objectRe = regexp.MustCompile(`\{[\s\S]*?\}`)
)

// StripFences extracts the interior of the first Markdown code fence
// (optionally tagged as json). Text without a fence is returned trimmed.
func StripFences(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// Normalize applies a layered recovery ladder to raw model output:
//
//  1. strip code fences
//  2. strict-parse the first bracket-delimited array of objects
//  3. parse the entire text as JSON
//  4. recover the first brace-delimited object, wrapped as an array
//  5. give up and carry the original text
//
// The ladder is defensive recovery, not a grammar-aware parser; a response
// it cannot rescue comes back as Unparsed with the input untouched.
func Normalize(raw string) Value {
	text := StripFences(raw)

	if span := arrayRe.FindString(text); span != "" {
		var arr []map[string]any
		if err := json.Unmarshal([]byte(span), &arr); err == nil {
			return Value{Kind: ParsedArray, Array: arr, Raw: raw}
		}
	}

	var whole any
	if err := json.Unmarshal([]byte(text), &whole); err == nil {
		switch v := whole.(type) {
		case map[string]any:
			return Value{Kind: ParsedObject, Object: v, Raw: raw}
		case []any:
			return Value{Kind: ParsedArray, Array: objectElements(v), Raw: raw}
		}
		// scalar JSON is not a structured value; fall through
	}

	if span := objectRe.FindString(text); span != "" {
		var arr []map[string]any
		if err := json.Unmarshal([]byte("["+span+"]"), &arr); err == nil {
			return Value{Kind: ParsedArray, Array: arr, Raw: raw}
		}
	}

	return Value{Kind: Unparsed, Raw: raw}
}

// objectElements keeps the object-shaped elements of a decoded JSON array.
// Non-object elements are dropped rather than failing the whole response.
func objectElements(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// StringField reads a string-valued key from a decoded object,
// returning "" when the key is absent or not a string
func StringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// StringSlice coerces a decoded JSON value into a string slice,
// dropping non-string elements
func StringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
