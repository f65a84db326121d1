// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestDescriptorsOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		want    Descriptors
		wantErr bool
	}{
		{"single label becomes one-element list", "x", Descriptors{"x"}, false},
		{"string slice passes through", []string{"x", "y"}, Descriptors{"x", "y"}, false},
		{"untyped string slice passes through", []any{"T_air_min", "T_air_max"}, Descriptors{"T_air_min", "T_air_max"}, false},
		{"nil is empty", nil, nil, false},
		{"numeric member rejected", []any{"x", 2}, nil, true},
		{"bare number rejected", 42, nil, true},
		{"map rejected", map[string]any{"x": 1}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DescriptorsOf(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DescriptorsOf(%v) returned nil error, want type mismatch", tt.value)
				}
				if !errors.Is(err, ErrInvalidDescriptors) {
					t.Errorf("error should wrap ErrInvalidDescriptors, got: %v", err)
				}
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("error should wrap ErrTypeMismatch, got: %v", err)
				}
				var dErr *InvalidDescriptorsError
				if !errors.As(err, &dErr) {
					t.Errorf("error should be *InvalidDescriptorsError, got: %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DescriptorsOf(%v) returned unexpected error: %v", tt.value, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DescriptorsOf(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDescriptors_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Descriptors
		want string
	}{
		{"two labels", Descriptors{"x", "y"}, "'x' 'y'"},
		{"one label", Descriptors{"T_air_min"}, "'T_air_min'"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
