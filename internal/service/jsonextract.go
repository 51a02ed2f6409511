package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports that a model response did not contain the JSON the
// caller demanded. Chat-completion models wrap their JSON in prose or code
// fences by convention, not by schema, so every call site parses through
// the extractors below and surfaces this error type on failure.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse model response: %s: %v", e.Reason, e.Err)
	}
	return "parse model response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractJSONArray locates the substring between the first '[' and the last
// ']' in raw and unmarshals it into v.
func ExtractJSONArray(raw string, v interface{}) error {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return &ParseError{Reason: "no JSON array found"}
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return &ParseError{Reason: "invalid JSON array", Err: err}
	}
	return nil
}

// ExtractJSONObject locates the first balanced '{...}' region in raw and
// unmarshals it into v. Braces inside JSON strings do not count toward
// balancing.
func ExtractJSONObject(raw string, v interface{}) error {
	start := strings.Index(raw, "{")
	if start == -1 {
		return &ParseError{Reason: "no JSON object found"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				if err := json.Unmarshal([]byte(raw[start:i+1]), v); err != nil {
					return &ParseError{Reason: "invalid JSON object", Err: err}
				}
				return nil
			}
		}
	}
	return &ParseError{Reason: "unbalanced JSON object"}
}
