// Package registry builds the name lookup tables for a loaded design once per
// run. Every resolution stage receives the same Registry instead of scanning
// the block and pin lists itself.
//
// Building a Registry also performs the identity checks the resolver relies
// on: block names, pin names, and signal names within a block must be unique.
package registry
