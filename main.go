/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/

// Gndwc converts raw marine survey tables into the three related Darwin
// Core tables (event, occurrence, measurementorfact) ready for OBIS/GBIF
// publication.
package main

import "github.com/gnames/gndwc/cmd"

func main() {
	cmd.Execute()
}
