// Package model defines the core data structures used throughout papercheck.
//
// This package contains the following main types:
//   - IssueIdentity / IssueLocation: how a newspaper issue is identified and found
//   - CoverageCase / AnomalyCase: the closed case taxonomy assigned by the checks
//   - CaseRegistry: case name -> offending issue/page paths collected during a run
//   - StatCounters / JournalCounts: numeric tallies merged per journal
//   - ImageRecord: one entry of a canonical issue's metadata file
//
// Models live in their own package to avoid circular dependencies: the
// archive, classify, check, audit and report packages all consume them.
// All result types merge with plain addition or list append, so the
// aggregator can combine per-issue results in any order.
package model
