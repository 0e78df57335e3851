// Package main provides the glyphsource CLI for inspecting and
// normalizing Glyphs font sources.
package main

func main() {
	Execute()
}
