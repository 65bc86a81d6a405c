// Package inventory discovers newspaper issues on disk.
//
// Both sides of the archive share one directory convention:
//
//	<root>/<journal>/<yyyy>/<mm>/<dd>[/<edition>]/...
//
// The edition level is optional; single-edition days may store the issue
// directly in the day directory, in which case the default edition is
// assumed. Discovery yields ordered IssueLocation values and never touches
// issue contents.
package inventory
