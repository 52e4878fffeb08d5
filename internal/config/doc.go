// Package config defines the interface for loading a pinmux design from a
// configuration source. The design model itself lives in package model and is
// the single input of the resolver. Concrete loaders, such as the HCL one,
// are provided in separate packages.
package config
