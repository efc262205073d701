package diagnostics

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value pair of a recorded call snapshot.
type Field struct {
	Key   string
	Value interface{}
}

// Payload is an ordered snapshot of a request or response body. Key order
// is the order the client sent the fields in, which matters when the
// payload feeds a signature base string.
//
// An empty Payload doubles as the failure marker for responses: a call
// whose response could not be parsed records a nil Payload.
type Payload []Field

// PayloadFromJSON decodes raw JSON into an ordered Payload. JSON objects
// are decoded token-wise so top-level key order survives. Falsy inputs
// (absent, null, false, 0, "" and empty objects/arrays) map to nil.
// Non-object values are wrapped under a single "value" key.
func PayloadFromJSON(raw json.RawMessage) Payload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	if trimmed[0] != '{' {
		var v interface{}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil
		}
		if isFalsyValue(v) {
			return nil
		}
		return Payload{{Key: "value", Value: v}}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var fields Payload
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		var val interface{}
		if err := dec.Decode(&val); err != nil {
			return nil
		}
		fields = append(fields, Field{Key: key, Value: val})
	}
	return fields
}

// MarshalJSON renders the payload back as a JSON object, preserving field
// order. Empty payloads render as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(f.Value)
		if err != nil {
			// Diagnostics must not lose the entry over one odd value.
			val, _ = json.Marshal(fmt.Sprintf("%v", f.Value))
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSON returns the payload as raw JSON, or nil for empty payloads.
func (p Payload) JSON() json.RawMessage {
	if len(p) == 0 {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	return b
}

func isFalsyValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == "" || t == "0"
	case float64:
		return t == 0
	case json.Number:
		return t.String() == "0"
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}
