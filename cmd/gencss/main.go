// Package main provides the gencss CLI for generating spacing utility
// classes.
package main

func main() {
	Execute()
}
