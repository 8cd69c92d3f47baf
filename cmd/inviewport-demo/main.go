//go:build !wasm
// +build !wasm

package main

func main() {
	execute()
}
