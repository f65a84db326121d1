// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed study_schema.cue
var studySchema string

// validateSettings checks the decoded study settings against the embedded
// #Study schema. Concrete(false) lets omitted optional fields pass; the
// defaults fill them in later.
func validateSettings(settings map[string]any, path string) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(studySchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile study schema: %w", schemaValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Study"))
	unified := schema.Unify(ctx.Encode(settings))
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatSchemaError(err, path)
	}
	return nil
}

// formatSchemaError rewrites CUE validation errors into one message per
// offending field, prefixed with its JSON-style path.
func formatSchemaError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	var lines []string
	for _, e := range cueErrs {
		pathStr := jsonPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE often repeats the field path inside the message.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}
		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// jsonPath renders a CUE error path ("method", "0", "name") in the JSON
// notation users know: method[0].name.
func jsonPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if isIndex(part) && i > 0 {
			sb.WriteString("[")
			sb.WriteString(part)
			sb.WriteString("]")
			continue
		}
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
