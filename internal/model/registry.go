package model

import "sort"

// CaseRegistry maps a case name to the list of issue (or page) paths that
// exhibit it. A registry grows monotonically while a run executes and is
// only read afterwards, by the report emitter and the run database.
//
// Per-case list order is not significant: the aggregator may merge
// per-issue registries in worker completion order. Consumers that need
// stable output call Paths, which returns a sorted copy.
type CaseRegistry struct {
	cases map[string][]string
}

// NewCaseRegistry returns an empty registry pre-seeded with the given case
// names so that report columns exist even when a case never fires.
func NewCaseRegistry(seed ...string) *CaseRegistry {
	r := &CaseRegistry{cases: make(map[string][]string, len(seed))}
	for _, name := range seed {
		r.cases[name] = nil
	}
	return r
}

// NewAnomalyRegistry returns a registry pre-seeded with every anomaly case.
func NewAnomalyRegistry() *CaseRegistry {
	r := &CaseRegistry{cases: make(map[string][]string, len(AllAnomalyCases))}
	for _, c := range AllAnomalyCases {
		r.cases[c.String()] = nil
	}
	return r
}

// NewCoverageRegistry returns a registry pre-seeded with every coverage case.
func NewCoverageRegistry() *CaseRegistry {
	r := &CaseRegistry{cases: make(map[string][]string, len(AllCoverageCases))}
	for _, c := range AllCoverageCases {
		r.cases[c.String()] = nil
	}
	return r
}

// Add records one offending path under the named case.
func (r *CaseRegistry) Add(name string, path string) {
	r.cases[name] = append(r.cases[name], path)
}

// AddAnomaly records one offending path under an anomaly case.
func (r *CaseRegistry) AddAnomaly(c AnomalyCase, path string) {
	r.Add(c.String(), path)
}

// AddCoverage records one issue path under a coverage case.
func (r *CaseRegistry) AddCoverage(c CoverageCase, path string) {
	r.Add(c.String(), path)
}

// Merge appends every entry of other into r. Merging is commutative up to
// per-case list order, which keeps the aggregation order-independent.
func (r *CaseRegistry) Merge(other *CaseRegistry) {
	if other == nil {
		return
	}
	for name, paths := range other.cases {
		r.cases[name] = append(r.cases[name], paths...)
	}
}

// Count returns the number of paths recorded under the named case.
func (r *CaseRegistry) Count(name string) int {
	return len(r.cases[name])
}

// Paths returns a sorted copy of the paths recorded under the named case.
func (r *CaseRegistry) Paths(name string) []string {
	src := r.cases[name]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	sort.Strings(out)
	return out
}

// Names returns every case name present in the registry, sorted.
func (r *CaseRegistry) Names() []string {
	names := make([]string, 0, len(r.cases))
	for name := range r.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Total returns the number of recorded paths across all cases.
func (r *CaseRegistry) Total() int {
	n := 0
	for _, paths := range r.cases {
		n += len(paths)
	}
	return n
}

// CountsByName returns case name -> entry count for every seeded case.
func (r *CaseRegistry) CountsByName() map[string]int {
	out := make(map[string]int, len(r.cases))
	for name, paths := range r.cases {
		out[name] = len(paths)
	}
	return out
}
