package sequence

import "strings"

// groupKey is a hashable representation of a Decomposition's Strings,
// suitable for use as a map key. Go map keys support slice-of-string
// equality only via an intermediate comparable representation, so Strings
// is joined with a separator unlikely to appear organically and unique
// per element count to avoid ambiguity between e.g. ["a", "bc"] and
// ["ab", "c"].
type groupKey string

// makeGroupKey derives a groupKey from a Decomposition's Strings such that
// two decompositions produce the same key iff their Strings are equal
// element-wise.
func makeGroupKey(strs []string) groupKey {
	var b strings.Builder
	for _, s := range strs {
		b.WriteString(s)
		b.WriteByte(0)
	}
	return groupKey(b.String())
}

// member is one filename's contribution to a Group: its original basename
// and its numeric tuple.
type member struct {
	name    string
	numbers []NumberToken
}

// Group maps a filename's Strings sequence to the members sharing it.
type Group struct {
	Strings []string
	Members []member
}

// GroupMap collects decomposed filenames into groups by their Strings.
// Insertion order of first-seen keys is preserved so that callers can
// produce deterministic output (§8).
type GroupMap struct {
	order []groupKey
	byKey map[groupKey]*Group
}

// NewGroupMap creates an empty GroupMap.
func NewGroupMap() *GroupMap {
	return &GroupMap{byKey: make(map[groupKey]*Group)}
}

// Insert adds one decomposed filename to the map.
func (gm *GroupMap) Insert(name string, d Decomposition) {
	key := makeGroupKey(d.Strings)
	g, ok := gm.byKey[key]
	if !ok {
		g = &Group{Strings: d.Strings}
		gm.byKey[key] = g
		gm.order = append(gm.order, key)
	}
	g.Members = append(g.Members, member{name: name, numbers: d.Numbers})
}

// Groups returns the collected groups in insertion order.
func (gm *GroupMap) Groups() []*Group {
	out := make([]*Group, 0, len(gm.order))
	for _, k := range gm.order {
		out = append(out, gm.byKey[k])
	}
	return out
}
