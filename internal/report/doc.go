// Package report renders aggregated journal reports.
//
// Three sinks exist:
//   - GlobalCSV: one CSV row per journal with structural counts, one column
//     per case and one per numeric stat (byte sizes humanized)
//   - DetailWriter: a per-journal Markdown listing of every offending
//     issue/page path under its case heading
//   - Summary: a terminal table across all journals of a run
//
// Writers only consume CaseRegistry/StatCounters values; they never reach
// back into the filesystem.
package report
