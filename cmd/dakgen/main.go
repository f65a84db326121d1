// SPDX-License-Identifier: MPL-2.0

// dakgen composes analysis experiment input decks from declarative study
// files. Subcommands render a deck, validate a study, or write a starter
// study file.
package main

func main() {
	Execute()
}
