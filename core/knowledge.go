package core

import "sort"

// Knowledge is an accumulated set of free-text facts available to all
// reasoning and planning calls. Adding the same fact twice is a no-op.
type Knowledge map[string]struct{}

// NewKnowledge creates a Knowledge set from the given facts.
func NewKnowledge(facts ...string) Knowledge {
	k := make(Knowledge, len(facts))
	k.Add(facts...)
	return k
}

// Add inserts one or more facts into the set.
func (k Knowledge) Add(facts ...string) {
	for _, f := range facts {
		k[f] = struct{}{}
	}
}

// Merge inserts every fact from other into the set.
func (k Knowledge) Merge(other Knowledge) {
	for f := range other {
		k[f] = struct{}{}
	}
}

// Items returns the facts in sorted order so prompt construction is
// deterministic across calls.
func (k Knowledge) Items() []string {
	items := make([]string, 0, len(k))
	for f := range k {
		items = append(items, f)
	}
	sort.Strings(items)
	return items
}
