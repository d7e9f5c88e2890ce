package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var _ json.Marshaler = (*Dictionary)(nil)

// ParseDictionary decodes a JSON object, keeping the key order of the input.
// Numbers are kept as json.Number so they are written back verbatim. When a
// key appears twice the last value wins and the first position is kept.
func ParseDictionary(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}
	d, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level object", tok)
	}
	return d, nil
}

// decodeObject reads the members of an object whose '{' was already consumed.
func decodeObject(dec *json.Decoder) (*Dictionary, error) {
	d := NewDictionary()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '{' {
			child, err := decodeObject(dec)
			if err != nil {
				return nil, err
			}
			d.Put(key, Node(child))
			continue
		}
		v, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}
		d.Put(key, Leaf(v))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

// decodeValue turns tok into a leaf value. Objects nested in arrays become
// *Dictionary values that are never sorted.
func decodeValue(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		items := []any{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(dec, tok)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// MarshalJSON writes the dictionary compactly in its current key order,
// without HTML escaping.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Dictionary) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		e := d.entries[k]
		if e.IsNode() {
			if err := e.node.writeJSON(buf); err != nil {
				return err
			}
			continue
		}
		if err := writeValue(buf, e.value); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
