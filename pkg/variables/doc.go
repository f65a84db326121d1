// SPDX-License-Identifier: MPL-2.0

// Package variables models the variables block of an analysis experiment
// input deck: the kind of parameter set being declared and the labeled
// entries it contains. The declared entry count is always the number of
// descriptor labels.
package variables
