// SPDX-License-Identifier: MPL-2.0

package method

import (
	"errors"
	"testing"

	"dakgen/pkg/types"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		wantErr bool
	}{
		{"parameter study", "vector_parameter_study", false},
		{"sampling", "sampling", false},
		{"arbitrary technique", "optpp_q_newton", false},
		{"empty rejected", "", true},
		{"whitespace rejected", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := New(tt.method)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%q) returned nil error, want invalid name", tt.method)
				}
				if !errors.Is(err, ErrInvalidMethodName) {
					t.Errorf("error should wrap ErrInvalidMethodName, got: %v", err)
				}
				if !errors.Is(err, types.ErrInvalidValue) {
					t.Errorf("error should wrap types.ErrInvalidValue, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) returned unexpected error: %v", tt.method, err)
			}
			if b.Name() != tt.method {
				t.Errorf("Name() = %q, want %q", b.Name(), tt.method)
			}
		})
	}
}

func TestBase_RenderBare(t *testing.T) {
	t.Parallel()
	b, err := New("vector_parameter_study")
	if err != nil {
		t.Fatal(err)
	}

	want := "method\n  vector_parameter_study\n"
	if got := b.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if b.Render() != b.Render() {
		t.Error("Render() should be idempotent without intervening mutation")
	}
}

func TestBase_MaxIterations(t *testing.T) {
	t.Parallel()
	b, err := New("sampling")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := b.MaxIterations(); ok {
		t.Fatal("MaxIterations should be unset on a new block")
	}
	if err := b.SetMaxIterations(100); err != nil {
		t.Fatalf("SetMaxIterations(100) returned unexpected error: %v", err)
	}
	if n, ok := b.MaxIterations(); !ok || n != 100 {
		t.Errorf("MaxIterations() = (%d, %v), want (100, true)", n, ok)
	}

	err = b.SetMaxIterations(-1)
	if err == nil {
		t.Fatal("SetMaxIterations(-1) returned nil error, want invalid value")
	}
	if !errors.Is(err, ErrInvalidMaxIterations) {
		t.Errorf("error should wrap ErrInvalidMaxIterations, got: %v", err)
	}
	if n, ok := b.MaxIterations(); !ok || n != 100 {
		t.Errorf("rejected assignment must retain prior value, got (%d, %v)", n, ok)
	}

	want := "method\n  sampling\n    max_iterations = 100\n"
	if got := b.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	b.ClearMaxIterations()
	if _, ok := b.MaxIterations(); ok {
		t.Error("ClearMaxIterations should unset the field")
	}
}

func TestBase_ConvergenceTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"mid interval", 0.5, false},
		{"near zero", 1e-07, false},
		{"near one", 0.999, false},
		{"zero rejected", 0.0, true},
		{"one rejected", 1.0, true},
		{"negative rejected", -0.5, true},
		{"above one rejected", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := New("sampling")
			if err != nil {
				t.Fatal(err)
			}

			err = b.SetConvergenceTolerance(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SetConvergenceTolerance(%v) returned nil error, want invalid value", tt.value)
				}
				if !errors.Is(err, ErrInvalidConvergenceTolerance) {
					t.Errorf("error should wrap ErrInvalidConvergenceTolerance, got: %v", err)
				}
				var tolErr *InvalidConvergenceToleranceError
				if !errors.As(err, &tolErr) {
					t.Errorf("error should be *InvalidConvergenceToleranceError, got: %T", err)
				}
				if _, ok := b.ConvergenceTolerance(); ok {
					t.Error("rejected assignment must leave the field unset")
				}
				return
			}
			if err != nil {
				t.Fatalf("SetConvergenceTolerance(%v) returned unexpected error: %v", tt.value, err)
			}
			want := "method\n  sampling\n    convergence_tolerance = " + types.FormatReal(tt.value) + "\n"
			if got := b.Render(); got != want {
				t.Errorf("Render() = %q, want %q", got, want)
			}
		})
	}
}

func TestBase_ToleranceRetainedOnRejection(t *testing.T) {
	t.Parallel()
	b, err := New("sampling")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetConvergenceTolerance(0.25); err != nil {
		t.Fatal(err)
	}
	if err := b.SetConvergenceTolerance(2.0); err == nil {
		t.Fatal("SetConvergenceTolerance(2.0) returned nil error, want invalid value")
	}
	if tol, ok := b.ConvergenceTolerance(); !ok || tol != 0.25 {
		t.Errorf("rejected assignment must retain prior value, got (%v, %v)", tol, ok)
	}
}

func TestBase_SetName(t *testing.T) {
	t.Parallel()
	b, err := New("sampling")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetName(""); err == nil {
		t.Fatal("SetName(\"\") returned nil error, want invalid name")
	}
	if b.Name() != "sampling" {
		t.Errorf("rejected assignment must retain prior name, got %q", b.Name())
	}
	if err := b.SetName("centered_parameter_study"); err != nil {
		t.Fatalf("SetName returned unexpected error: %v", err)
	}
	if b.Name() != "centered_parameter_study" {
		t.Errorf("Name() = %q, want %q", b.Name(), "centered_parameter_study")
	}
}
