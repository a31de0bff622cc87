// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decoder turns document text into a Node tree.
type Decoder interface {
	Decode(data []byte) (Node, error)
}

// JSONDecoder decodes with encoding/json, keeping numbers as their literal text
// so integer and real fields can be told apart.
type JSONDecoder struct{}

func (JSONDecoder) Decode(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedDocument)
	}

	return toValue(raw), nil
}

func toValue(raw any) *Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case json.Number:
		return &Value{kind: KindNumber, num: v}
	case string:
		return String(v)
	case []any:
		elems := make([]Node, len(v))
		for i, e := range v {
			elems[i] = toValue(e)
		}
		return Array(elems...)
	case map[string]any:
		fields := make(map[string]Node, len(v))
		for k, e := range v {
			fields[k] = toValue(e)
		}
		return Object(fields)
	}

	// encoding/json with UseNumber produces only the kinds above.
	panic(fmt.Sprintf("parser: unexpected decoded type %T", raw))
}
