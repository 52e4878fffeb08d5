// Package hcladapter loads a pinmux design from HCL files. It decodes the
// top-level `block` and `pin` blocks with gohcl and translates them into the
// format-agnostic model. Files are read in path order and merged so that
// declaration order is kept.
package hcladapter
