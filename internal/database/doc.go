// Package database provides SQLite-based storage of run history.
//
// Every run saves one summary row per journal: the case counts, the image
// tallies and the structural counters. The compare command reads this
// history to show how a journal's anomaly profile moved between runs.
// Offending path lists are not persisted; they live in the detail reports.
package database
