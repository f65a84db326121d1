// SPDX-License-Identifier: MPL-2.0

// Package experiment assembles complete analysis input decks from the
// per-concern blocks: environment, method, variables, interface, and
// responses. The assembled deck is deterministic text, suitable for diffing
// and for feeding straight to the analysis engine.
package experiment

import (
	"fmt"
	"strings"

	"dakgen/pkg/method"
	"dakgen/pkg/responses"
	"dakgen/pkg/variables"
)

type (
	// Validator is implemented by blocks that carry cross-field rules which
	// cannot be enforced at assignment time.
	Validator interface {
		Validate() error
	}

	// Experiment owns one block of each family and renders the full input
	// deck. Blocks it was not given are simply omitted from the deck.
	Experiment struct {
		environment *Environment
		method      method.Block
		variables   variables.Block
		iface       *Interface
		responses   responses.Block
	}

	// BlockError is returned by Validate when one of the owned blocks fails
	// its own validation. It names the block and wraps the cause.
	BlockError struct {
		Block string
		Cause error
	}
)

// New returns an experiment with a default environment and no other blocks.
func New() *Experiment {
	return &Experiment{environment: NewEnvironment()}
}

// Environment returns the environment block.
func (e *Experiment) Environment() *Environment { return e.environment }

// SetEnvironment replaces the environment block. A nil environment omits the
// block from the deck.
func (e *Experiment) SetEnvironment(env *Environment) { e.environment = env }

// Method returns the method block, or nil if none is set.
func (e *Experiment) Method() method.Block { return e.method }

// SetMethod replaces the method block.
func (e *Experiment) SetMethod(m method.Block) { e.method = m }

// Variables returns the variables block, or nil if none is set.
func (e *Experiment) Variables() variables.Block { return e.variables }

// SetVariables replaces the variables block.
func (e *Experiment) SetVariables(v variables.Block) { e.variables = v }

// Interface returns the interface block, or nil if none is set.
func (e *Experiment) Interface() *Interface { return e.iface }

// SetInterface replaces the interface block.
func (e *Experiment) SetInterface(i *Interface) { e.iface = i }

// Responses returns the responses block, or nil if none is set.
func (e *Experiment) Responses() responses.Block { return e.responses }

// SetResponses replaces the responses block.
func (e *Experiment) SetResponses(r responses.Block) { e.responses = r }

// Validate runs the validation of every owned block that has one, in deck
// order, and reports the first failure.
func (e *Experiment) Validate() error {
	check := func(name string, block any) error {
		v, ok := block.(Validator)
		if !ok {
			return nil
		}
		if err := v.Validate(); err != nil {
			return &BlockError{Block: name, Cause: err}
		}
		return nil
	}
	if e.environment != nil {
		if err := check("environment", e.environment); err != nil {
			return err
		}
	}
	if e.method != nil {
		if err := check("method", e.method); err != nil {
			return err
		}
	}
	if e.variables != nil {
		if err := check("variables", e.variables); err != nil {
			return err
		}
	}
	if e.iface != nil {
		if err := check("interface", e.iface); err != nil {
			return err
		}
	}
	if e.responses != nil {
		if err := check("responses", e.responses); err != nil {
			return err
		}
	}
	return nil
}

// Render emits the full input deck: each present block's rendering, trimmed
// of trailing newlines, separated by blank lines, and terminated by a single
// newline. Identical state yields byte-identical output.
func (e *Experiment) Render() string {
	var blocks []string
	appendBlock := func(text string) {
		text = strings.TrimRight(text, "\n")
		if text != "" {
			blocks = append(blocks, text)
		}
	}
	if e.environment != nil {
		appendBlock(e.environment.Render())
	}
	if e.method != nil {
		appendBlock(e.method.Render())
	}
	if e.variables != nil {
		appendBlock(e.variables.Render())
	}
	if e.iface != nil {
		appendBlock(e.iface.Render())
	}
	if e.responses != nil {
		appendBlock(e.responses.Render())
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// Error implements the error interface for BlockError.
func (e *BlockError) Error() string {
	return fmt.Sprintf("%s block: %v", e.Block, e.Cause)
}

// Unwrap returns the underlying block validation error.
func (e *BlockError) Unwrap() error { return e.Cause }
