// Package payload decodes POST /track bodies without ever failing the request.
package payload

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// utf8BOM may prefix a body; it is not part of the JSON text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Event is one incoming event as seen by a single request.
//
// Raw holds the received JSON text (surrounding whitespace trimmed) and is what
// gets echoed back, so object key order and nesting survive untouched. Value is
// the decoded form used for emptiness checks and audit logging. OK is false
// when the body was empty or not a single valid JSON value.
type Event struct {
	Raw   json.RawMessage
	Value any
	OK    bool
}

// Decode parses body as one JSON value. Malformed input, including invalid
// UTF-8 inside strings, resolves to an Event with OK == false rather than an
// error. A leading byte order mark is dropped.
func Decode(body []byte) Event {
	raw := bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))
	if len(raw) == 0 || !utf8.Valid(raw) || !json.Valid(raw) {
		return Event{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Event{}
	}
	return Event{Raw: json.RawMessage(raw), Value: v, OK: true}
}

// EmptyLike reports whether the event carries no meaningful content.
//
// Rejected: decode failure, null, false, any number equal to zero, "", {} and
// []. Everything else is accepted. This mirrors a loose truthiness test, so a
// legitimate payload of 0 or false is rejected as well.
func (e Event) EmptyLike() bool {
	if !e.OK {
		return true
	}
	return isFalsy(e.Value)
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		// Out of range magnitudes fail to parse and are non-zero.
		return err == nil && f == 0
	case float64:
		return t == 0
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
