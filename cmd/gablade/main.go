// Package main implements gablade, a command-line calculator for basis-blade
// products of Clifford algebras.
//
// Examples:
//
//	gablade metric --algebra pga3
//	gablade --p 2 product wedge e0 e1
//	gablade --algebra quaternion table geometric
package main

import "os"

// version is set at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
