// SPDX-License-Identifier: MPL-2.0

// Package method models the method block of an analysis experiment input
// deck: the named analysis technique plus its stopping and sampling
// controls. Every field is validated on assignment; rendering assumes the
// invariants already hold and is a pure, deterministic transform.
package method
