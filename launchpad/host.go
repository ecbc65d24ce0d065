//go:build !wasm

package main

// Host builds only exist so the package compiles under plain go tooling.
func main() {}
