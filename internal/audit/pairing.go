package audit

import "github.com/dh-archival/papercheck/internal/model"

// Pair is one identity-matched original/canonical issue couple.
type Pair struct {
	Original  model.IssueLocation
	Canonical model.IssueLocation
}

// PairIssues matches issue listings by identity key (journal, date,
// edition). Positional matching is deliberately not supported: directory
// traversal order differs between the two sides whenever either has gaps.
//
// Issues present on only one side are returned separately; they are
// excluded from the canonical check and counted at the journal level.
func PairIssues(originals, canonicals []model.IssueLocation) (pairs []Pair, unpairedOriginal, unpairedCanonical []model.IssueLocation) {
	byIdentity := make(map[model.IssueIdentity]model.IssueLocation, len(canonicals))
	for _, cano := range canonicals {
		byIdentity[cano.IssueIdentity] = cano
	}

	matched := make(map[model.IssueIdentity]bool, len(originals))
	for _, orig := range originals {
		if cano, ok := byIdentity[orig.IssueIdentity]; ok {
			pairs = append(pairs, Pair{Original: orig, Canonical: cano})
			matched[orig.IssueIdentity] = true
		} else {
			unpairedOriginal = append(unpairedOriginal, orig)
		}
	}

	for _, cano := range canonicals {
		if !matched[cano.IssueIdentity] {
			unpairedCanonical = append(unpairedCanonical, cano)
		}
	}

	return pairs, unpairedOriginal, unpairedCanonical
}
