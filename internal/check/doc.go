// Package check validates a paired original/canonical issue: canonical
// naming, completeness, per-image provenance metadata, and page-to-image
// coverage.
//
// Every rule is independent and non-fatal. A violation is recorded as an
// anomaly case against the issue and checking continues with the next rule;
// one issue may accumulate several cases. The only short-circuit is an
// issue with no canonical images at all, which skips the per-image rules
// because there is nothing left to examine.
package check
