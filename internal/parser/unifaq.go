// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"errors"
	"fmt"

	"github.com/unifaq/core/internal/models"
)

const (
	TableGroups       = "groups"
	TableInteractions = "interactions"
)

// Field names of the group table.
const (
	FieldSGI = "sgi"
	FieldMGI = "mgi"
	FieldRk  = "R_k"
	FieldQk  = "Q_k"
)

// Field names of the interaction table.
const (
	FieldMGI1 = "mgi1"
	FieldMGI2 = "mgi2"
	FieldAij  = "a_ij"
	FieldAji  = "a_ji"
	FieldBij  = "b_ij"
	FieldBji  = "b_ji"
	FieldCij  = "c_ij"
	FieldCji  = "c_ji"
)

// RecordError locates a malformed element of a table. It matches
// ErrMalformedRecord as well as its underlying cause.
type RecordError struct {
	Table string
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s[%d]: %v", e.Table, e.Index, e.Err)
	}
	return fmt.Sprintf("%s[%d].%s: %v", e.Table, e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// Groups converts a parsed group table into records, in document order.
// Every malformed element is reported; no records are returned on error.
func Groups(root Node) ([]models.Group, error) {
	elems, err := tableElements(TableGroups, root)
	if err != nil {
		return nil, err
	}

	groups := make([]models.Group, 0, len(elems))
	var errs []error

	for i, elem := range elems {
		r := newRecordReader(TableGroups, i, elem)
		g := models.Group{
			SGI: r.int(FieldSGI),
			MGI: r.int(FieldMGI),
			Rk:  r.float(FieldRk),
			Qk:  r.float(FieldQk),
		}

		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}

		groups = append(groups, g)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return groups, nil
}

// InteractionParameters converts a parsed interaction table into records, in
// document order. Error handling matches Groups.
func InteractionParameters(root Node) ([]models.InteractionParameters, error) {
	elems, err := tableElements(TableInteractions, root)
	if err != nil {
		return nil, err
	}

	params := make([]models.InteractionParameters, 0, len(elems))
	var errs []error

	for i, elem := range elems {
		r := newRecordReader(TableInteractions, i, elem)
		p := models.InteractionParameters{
			MGI1: r.int(FieldMGI1),
			MGI2: r.int(FieldMGI2),
			Aij:  r.float(FieldAij),
			Aji:  r.float(FieldAji),
			Bij:  r.float(FieldBij),
			Bji:  r.float(FieldBji),
			Cij:  r.float(FieldCij),
			Cji:  r.float(FieldCji),
		}

		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}

		params = append(params, p)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return params, nil
}

func tableElements(table string, root Node) ([]Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: %s table is empty", ErrMalformedDocument, table)
	}

	elems, err := root.Elements()
	if err != nil {
		return nil, fmt.Errorf("%w: %s table must be an array: %w", ErrMalformedDocument, table, err)
	}

	return elems, nil
}

// recordReader extracts fields from one element and keeps the first failure.
type recordReader struct {
	table string
	index int
	node  Node
	err   error
}

func newRecordReader(table string, index int, node Node) *recordReader {
	r := &recordReader{table: table, index: index, node: node}

	if node == nil || node.Kind() != KindObject {
		kind := KindNull
		if node != nil {
			kind = node.Kind()
		}
		r.err = &RecordError{
			Table: table,
			Index: index,
			Err:   fmt.Errorf("%w: expected object, got %s", ErrWrongType, kind),
		}
	}

	return r
}

func (r *recordReader) field(name string) Node {
	if r.err != nil {
		return nil
	}

	n, ok := r.node.Field(name)
	if !ok || n == nil {
		r.fail(name, ErrMissingField)
		return nil
	}

	return n
}

func (r *recordReader) int(name string) int {
	n := r.field(name)
	if n == nil {
		return 0
	}

	i, err := n.Int()
	if err != nil {
		r.fail(name, err)
	}

	return i
}

func (r *recordReader) float(name string) float64 {
	n := r.field(name)
	if n == nil {
		return 0
	}

	f, err := n.Float()
	if err != nil {
		r.fail(name, err)
	}

	return f
}

func (r *recordReader) fail(name string, err error) {
	r.err = &RecordError{Table: r.table, Index: r.index, Field: name, Err: err}
}
