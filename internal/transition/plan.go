package transition

import "sort"

// Plan classifies every key of two consecutive layouts.
type Plan struct {
	// Morphs are keys present in both layouts whose geometry is interpolated.
	Morphs []Key
	// Enters are keys only present in the new layout.
	Enters []Key
	// Exits are keys only present in the old layout.
	Exits []Key
}

// Diff matches keys between prev and next. Matching is exact: two different
// artworks never share a key, so they are never morphed into each other.
func Diff(prev, next Snapshot) Plan {
	var p Plan
	for k := range next {
		if _, ok := prev[k]; ok {
			p.Morphs = append(p.Morphs, k)
		} else {
			p.Enters = append(p.Enters, k)
		}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			p.Exits = append(p.Exits, k)
		}
	}
	sortKeys(p.Morphs)
	sortKeys(p.Enters)
	sortKeys(p.Exits)
	return p
}

// HasMorph reports whether k is interpolated by the plan.
func (p Plan) HasMorph(k Key) bool {
	for _, m := range p.Morphs {
		if m == k {
			return true
		}
	}
	return false
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
