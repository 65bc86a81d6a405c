// Package main provides the entry point for the papercheck CLI.
//
// papercheck audits a digitized-newspaper archive: it verifies that the
// original scanned material and the canonical converted material of every
// issue are structurally consistent, and classifies each issue into a
// fixed taxonomy of coverage and anomaly cases.
//
// Usage:
//
//	papercheck original  --original-dir DIR --report-dir DIR GDL JDG
//	papercheck canonical --original-dir DIR --canonical-dir DIR --report-dir DIR GDL
//
// See --help for all available options.
package main

// main is the entry point for papercheck.
func main() {
	Execute()
}
