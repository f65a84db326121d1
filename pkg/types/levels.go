// SPDX-License-Identifier: MPL-2.0

package types

import (
	"fmt"
	"strings"
)

// ErrInvalidLevels is the sentinel error wrapped by InvalidLevelsError.
var ErrInvalidLevels = fmt.Errorf("%w: invalid levels", ErrTypeMismatch)

type (
	// Levels holds probability or response levels for a sampling study.
	// A Levels value is either flat (one sequence of levels, shared by a
	// single response) or grouped (one sub-sequence per response). The shape
	// is fixed at construction; rendering is a plain branch on it.
	Levels struct {
		flat    []float64
		grouped [][]float64
	}

	// InvalidLevelsError is returned when a dynamically typed levels value
	// is neither a sequence of numbers nor a sequence of number sequences.
	// It wraps ErrInvalidLevels for errors.Is() compatibility.
	InvalidLevelsError struct {
		Value any
	}
)

// FlatLevels builds a flat Levels value from the given scalars.
func FlatLevels(values ...float64) Levels {
	return Levels{flat: append([]float64(nil), values...)}
}

// GroupedLevels builds a grouped Levels value, one sub-sequence per response.
func GroupedLevels(groups ...[]float64) Levels {
	copied := make([][]float64, 0, len(groups))
	for _, g := range groups {
		copied = append(copied, append([]float64(nil), g...))
	}
	return Levels{grouped: copied}
}

// LevelsOf normalizes a dynamically typed levels value, as read from a study
// file. Accepted shapes: nil (empty), a sequence of numbers (flat), or a
// sequence of number sequences (grouped). A sequence mixing scalars and
// sub-sequences is a type mismatch: the shape must be resolved once, here,
// not re-inspected at render time.
func LevelsOf(value any) (Levels, error) {
	switch v := value.(type) {
	case nil:
		return Levels{}, nil
	case Levels:
		return v, nil
	case []float64:
		return FlatLevels(v...), nil
	case []int:
		flat := make([]float64, 0, len(v))
		for _, n := range v {
			flat = append(flat, float64(n))
		}
		return Levels{flat: flat}, nil
	case [][]float64:
		return GroupedLevels(v...), nil
	case []any:
		return levelsOfSequence(v)
	default:
		return Levels{}, &InvalidLevelsError{Value: value}
	}
}

// levelsOfSequence resolves an untyped sequence into a flat or grouped value.
func levelsOfSequence(items []any) (Levels, error) {
	if len(items) == 0 {
		return Levels{}, nil
	}

	if _, ok := asReal(items[0]); ok {
		flat := make([]float64, 0, len(items))
		for _, item := range items {
			f, ok := asReal(item)
			if !ok {
				return Levels{}, &InvalidLevelsError{Value: items}
			}
			flat = append(flat, f)
		}
		return Levels{flat: flat}, nil
	}

	grouped := make([][]float64, 0, len(items))
	for _, item := range items {
		seq, ok := item.([]any)
		if !ok {
			return Levels{}, &InvalidLevelsError{Value: items}
		}
		group := make([]float64, 0, len(seq))
		for _, member := range seq {
			f, ok := asReal(member)
			if !ok {
				return Levels{}, &InvalidLevelsError{Value: items}
			}
			group = append(group, f)
		}
		grouped = append(grouped, group)
	}
	return Levels{grouped: grouped}, nil
}

// asReal widens the numeric types a config decoder may produce.
func asReal(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsEmpty reports whether the value holds no top-level entries.
func (l Levels) IsEmpty() bool {
	return len(l.flat) == 0 && len(l.grouped) == 0
}

// IsGrouped reports whether the value carries one sub-sequence per response.
func (l Levels) IsGrouped() bool { return len(l.grouped) > 0 }

// Expand renders the text that follows a "*_levels =" field: flat levels
// continue space-separated on the current line, grouped levels start one
// indented continuation line per group. The fragment always ends with a
// newline.
func (l Levels) Expand() string {
	var sb strings.Builder
	if l.IsGrouped() {
		for _, group := range l.grouped {
			sb.WriteString("\n     ")
			for _, v := range group {
				sb.WriteString(" ")
				sb.WriteString(FormatReal(v))
			}
		}
	} else {
		for _, v := range l.flat {
			sb.WriteString(" ")
			sb.WriteString(FormatReal(v))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// Error implements the error interface for InvalidLevelsError.
func (e *InvalidLevelsError) Error() string {
	return fmt.Sprintf("invalid levels %v (%T): must be a list of numbers or a list of number lists", e.Value, e.Value)
}

// Unwrap returns ErrInvalidLevels for errors.Is() compatibility.
func (e *InvalidLevelsError) Unwrap() error { return ErrInvalidLevels }
