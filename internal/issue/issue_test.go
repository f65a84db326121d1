// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load study file"},
			want: "failed to load study file",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load study file", Resource: "./dakgen.yaml"},
			want: "failed to load study file: ./dakgen.yaml",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load study file",
				Resource:  "./dakgen.yaml",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load study file: ./dakgen.yaml: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	err := Wrap(fmt.Errorf("outer: %w", sentinel), "render input deck")
	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is should reach the wrapped sentinel through the chain")
	}
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
	if WrapResource(nil, "anything", "res") != nil {
		t.Error("WrapResource(nil, ...) should return nil")
	}
}

func TestContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := NewContext().
		WithOperation("load study file").
		WithResource("study.yaml").
		WithSuggestion("check the file syntax").
		WithSuggestion("run 'dakgen init' to write a known-good starter").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with an operation set")
	}
	if err.Operation != "load study file" || err.Resource != "study.yaml" {
		t.Errorf("unexpected context: %+v", err)
	}
	if len(err.Suggestions) != 2 {
		t.Fatalf("Suggestions = %v, want 2 entries", err.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap the cause")
	}
}

func TestContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewContext().WithResource("study.yaml").Build(); got != nil {
		t.Errorf("Build() without an operation = %v, want nil", got)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewContext().
		WithOperation("validate study").
		WithSuggestion("fix the reported field").
		Wrap(fmt.Errorf("outer: %w", errors.New("inner"))).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "• fix the reported field") {
		t.Errorf("Format(false) should list suggestions, got %q", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the chain, got %q", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) should include the chain, got %q", verbose)
	}
	if !strings.Contains(verbose, "2. inner") {
		t.Errorf("Format(true) should number unwrapped causes, got %q", verbose)
	}
}
