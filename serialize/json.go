// Package serialize implements the CSDF/CSDFE codec (§4.6, §6.1): an
// ordered-JSON document renderer/parser plus external side-file management
// for DVs whose component bytes live outside the JSON document.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/csdm-go/csdm/value"
)

// RenderJSON writes m as JSON bytes, preserving key insertion order rather
// than encoding/json's sorted-map behavior, since the wire format's key
// order is part of §4.6 step 4's contract.
func RenderJSON(m *value.Mapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeMapping(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMapping(buf *bytes.Buffer, m *value.Mapping) error {
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, k)
		buf.WriteByte(':')
		v, _ := m.Get(k)
		if err := writeValue(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, a *value.Array) error {
	buf.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, a.At(i)); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.String()
		writeJSONString(buf, s)
	case value.KindNumber:
		n, _ := v.Number()
		buf.WriteString(n.String())
	case value.KindBoolean:
		b, _ := v.Bool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindArray:
		a, _ := v.Array()
		return writeArray(buf, a)
	case value.KindMapping:
		m, _ := v.Mapping()
		return writeMapping(buf, m)
	case value.KindNull:
		buf.WriteString("null")
	default:
		return fmt.Errorf("serialize: cannot render value of kind %s to JSON", v.Kind())
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// ParseJSON reads a JSON document into a value.Mapping, preserving key
// order as encountered via token-based decoding rather than unmarshaling
// into a Go map (whose iteration order is unspecified).
func ParseJSON(r io.Reader) (*value.Mapping, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	m, err := v.Mapping()
	if err != nil {
		return nil, fmt.Errorf("serialize: document root is not a JSON object")
	}
	return m, nil
}

func parseValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := value.NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return value.Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return value.Value{}, fmt.Errorf("serialize: object key is not a string")
				}
				v, err := parseValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				m.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return value.Value{}, err
			}
			return value.FromMapping(m), nil
		case '[':
			a := value.NewArray()
			for dec.More() {
				v, err := parseValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				a.Append(v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return value.Value{}, err
			}
			return value.FromArray(a), nil
		default:
			return value.Value{}, fmt.Errorf("serialize: unexpected JSON delimiter %v", t)
		}
	case string:
		return value.FromString(t), nil
	case bool:
		return value.FromBool(t), nil
	case json.Number:
		if f, err := t.Float64(); err == nil {
			if i, err := t.Int64(); err == nil && fmt.Sprintf("%d", i) == t.String() {
				return value.FromNumber(value.Int(i)), nil
			}
			return value.FromNumber(value.Float(f)), nil
		}
		return value.Value{}, fmt.Errorf("serialize: malformed JSON number %q", t.String())
	case nil:
		return value.Null(), nil
	default:
		return value.Value{}, fmt.Errorf("serialize: unsupported JSON token %T", tok)
	}
}
