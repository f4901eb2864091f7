package stylesheet

// ChangeKind classifies a difference between two stylesheets.
type ChangeKind int

const (
	// Missing rules are expected but absent from the file.
	Missing ChangeKind = iota
	// Unexpected rules are in the file but no longer generated.
	Unexpected
	// Changed rules exist in both with different declarations.
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Unexpected:
		return "unexpected"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Change is one rule-level difference.
type Change struct {
	Kind ChangeKind
	Key  string // Media condition and selector
	Want string // Expected declarations, empty for Unexpected
	Got  string // Declarations found, empty for Missing
}

// Diff compares the expected rules with the rules found in a file.
// Rules are matched by key; repeated keys are matched in order.
// Missing and changed rules come first in want order, followed by
// unexpected rules in got order.
func Diff(want, got []Rule) []Change {
	byKey := make(map[string][]int, len(got))
	for i, r := range got {
		byKey[r.Key()] = append(byKey[r.Key()], i)
	}
	matched := make([]bool, len(got))

	var changes []Change
	for _, w := range want {
		key := w.Key()
		idx := byKey[key]
		if len(idx) == 0 {
			changes = append(changes, Change{Kind: Missing, Key: key, Want: w.Body()})
			continue
		}
		byKey[key] = idx[1:]
		matched[idx[0]] = true

		g := got[idx[0]]
		if w.Body() != g.Body() {
			changes = append(changes, Change{Kind: Changed, Key: key, Want: w.Body(), Got: g.Body()})
		}
	}

	for i, g := range got {
		if !matched[i] {
			changes = append(changes, Change{Kind: Unexpected, Key: g.Key(), Got: g.Body()})
		}
	}

	return changes
}

// Count tallies changes by kind.
func Count(changes []Change) map[ChangeKind]int {
	counts := make(map[ChangeKind]int, 3)
	for _, c := range changes {
		counts[c.Kind]++
	}
	return counts
}
