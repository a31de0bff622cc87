// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedDocument indicates input that is not a usable JSON document.
	ErrMalformedDocument = errors.New("parser: malformed document")

	// ErrMalformedRecord indicates a document element with a missing or mistyped field.
	ErrMalformedRecord = errors.New("parser: malformed record")

	// ErrWrongType indicates a node accessed as a kind it does not hold.
	ErrWrongType = errors.New("parser: wrong type")

	// ErrMissingField indicates a required object field is absent.
	ErrMissingField = errors.New("parser: missing field")
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one value of a parsed document tree.
type Node interface {
	Kind() Kind
	// Elements returns the children of an array node.
	Elements() ([]Node, error)
	// Field returns the named member of an object node.
	Field(name string) (Node, bool)
	Int() (int, error)
	Float() (float64, error)
}

// Value is the Node implementation produced by JSONDecoder. The constructors
// below build the same trees by hand.
type Value struct {
	kind   Kind
	num    json.Number
	str    string
	b      bool
	elems  []Node
	fields map[string]Node
}

func Null() *Value { return &Value{kind: KindNull} }

func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

func String(s string) *Value { return &Value{kind: KindString, str: s} }

// Number holds the literal text of a JSON number, e.g. "1" or "0.9011".
func Number(text string) *Value { return &Value{kind: KindNumber, num: json.Number(text)} }

func Array(elems ...Node) *Value { return &Value{kind: KindArray, elems: elems} }

func Object(fields map[string]Node) *Value { return &Value{kind: KindObject, fields: fields} }

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) Elements() ([]Node, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrWrongType, v.kind)
	}
	return v.elems, nil
}

func (v *Value) Field(name string) (Node, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	n, ok := v.fields[name]
	return n, ok
}

func (v *Value) Int() (int, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: expected integer, got %s", ErrWrongType, v.kind)
	}
	i, err := strconv.ParseInt(string(v.num), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrWrongType, v.num)
	}
	return int(i), nil
}

func (v *Value) Float() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrWrongType, v.kind)
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", ErrWrongType, v.num)
	}
	return f, nil
}
