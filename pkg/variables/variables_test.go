// SPDX-License-Identifier: MPL-2.0

package variables

import (
	"errors"
	"reflect"
	"testing"

	"dakgen/pkg/types"
)

var (
	_ Block = (*Base)(nil)
	_ Block = (*ContinuousDesign)(nil)
	_ Block = (*UniformUncertain)(nil)
)

func TestNew(t *testing.T) {
	t.Parallel()

	b, err := New(DefaultKind)
	if err != nil {
		t.Fatalf("New(%q) returned unexpected error: %v", DefaultKind, err)
	}
	if b.Kind() != "continuous_design" {
		t.Errorf("Kind() = %q, want continuous_design", b.Kind())
	}

	if _, err := New("  "); err == nil {
		t.Fatal("New with a blank kind returned nil error, want invalid kind")
	} else if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("error should wrap ErrInvalidKind, got: %v", err)
	}
}

func TestBase_SetDescriptors(t *testing.T) {
	t.Parallel()

	t.Run("single label normalizes to one-element list", func(t *testing.T) {
		t.Parallel()
		b, err := New(DefaultKind)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.SetDescriptors("x"); err != nil {
			t.Fatalf("SetDescriptors(\"x\") returned unexpected error: %v", err)
		}
		want := types.Descriptors{"x"}
		if !reflect.DeepEqual(b.Descriptors(), want) {
			t.Errorf("Descriptors() = %v, want %v", b.Descriptors(), want)
		}
	})

	t.Run("invalid shape retains prior value", func(t *testing.T) {
		t.Parallel()
		b, err := New(DefaultKind)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.SetDescriptors([]string{"x", "y"}); err != nil {
			t.Fatal(err)
		}
		err = b.SetDescriptors(42)
		if err == nil {
			t.Fatal("SetDescriptors(42) returned nil error, want type mismatch")
		}
		if !errors.Is(err, types.ErrTypeMismatch) {
			t.Errorf("error should wrap types.ErrTypeMismatch, got: %v", err)
		}
		want := types.Descriptors{"x", "y"}
		if !reflect.DeepEqual(b.Descriptors(), want) {
			t.Errorf("rejected assignment must retain prior value, got %v", b.Descriptors())
		}
	})
}

func TestBase_Render(t *testing.T) {
	t.Parallel()
	b, err := New(DefaultKind)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetDescriptors([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}

	want := "variables\n  continuous_design = 2\n    descriptors = 'x' 'y'"
	if got := b.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if b.Render() != b.Render() {
		t.Error("Render() should be idempotent without intervening mutation")
	}
}

func TestBase_RenderNoDescriptors(t *testing.T) {
	t.Parallel()
	b, err := New("discrete_state_set")
	if err != nil {
		t.Fatal(err)
	}
	want := "variables\n  discrete_state_set = 0\n    descriptors ="
	if got := b.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestContinuousDesign(t *testing.T) {
	t.Parallel()
	v := NewContinuousDesign()
	if err := v.SetDescriptors([]string{"T_air_min", "T_air_max"}); err != nil {
		t.Fatal(err)
	}
	v.SetInitialPoint(-10.0, 10.0)
	v.SetLowerBounds(-20.0, 5.0)
	v.SetUpperBounds(-5.0, 20.0)

	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}

	want := "variables\n" +
		"  continuous_design = 2\n" +
		"    descriptors = 'T_air_min' 'T_air_max'\n" +
		"    initial_point = -10.0 10.0\n" +
		"    lower_bounds = -20.0 5.0\n" +
		"    upper_bounds = -5.0 20.0\n"
	if got := v.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestContinuousDesign_CountMismatch(t *testing.T) {
	t.Parallel()
	v := NewContinuousDesign()
	if err := v.SetDescriptors([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	v.SetInitialPoint(1.0)

	err := v.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil error, want count mismatch")
	}
	if !errors.Is(err, ErrCountMismatch) {
		t.Errorf("error should wrap ErrCountMismatch, got: %v", err)
	}
	var cmErr *CountMismatchError
	if !errors.As(err, &cmErr) {
		t.Fatalf("error should be *CountMismatchError, got: %T", err)
	}
	if cmErr.Field != "initial_point" || cmErr.Want != 2 || cmErr.Got != 1 {
		t.Errorf("unexpected mismatch details: %+v", cmErr)
	}
}

func TestUniformUncertain(t *testing.T) {
	t.Parallel()
	v := NewUniformUncertain()
	if err := v.SetDescriptors([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}

	err := v.Validate()
	if err == nil {
		t.Fatal("Validate() without bounds returned nil error, want missing bounds")
	}
	if !errors.Is(err, ErrMissingBounds) {
		t.Errorf("error should wrap ErrMissingBounds, got: %v", err)
	}

	v.SetLowerBounds(0.0, 0.0)
	v.SetUpperBounds(1.0, 1.0)
	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}

	want := "variables\n" +
		"  uniform_uncertain = 2\n" +
		"    descriptors = 'x' 'y'\n" +
		"    lower_bounds = 0.0 0.0\n" +
		"    upper_bounds = 1.0 1.0\n"
	if got := v.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
