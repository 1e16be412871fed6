package sequence

import "sort"

// Candidate is one sequence candidate produced by the Disambiguator: a
// varying slot index and the subset of a group's members that share it.
type Candidate struct {
	VaryingSlot int
	Members     []member
}

// Names returns the basenames of the candidate's members, in their
// current (sorted) order.
func (c Candidate) Names() []string {
	names := make([]string, len(c.Members))
	for i, m := range c.Members {
		names[i] = m.name
	}
	return names
}

// Disambiguate decides which numeric slot is the frame index in a group
// where more than one slot varies across members. That choice is not
// fixed for the whole group: each pass picks the rightmost slot that
// still varies across the remaining pool, partitions by every other varying
// slot, and finalizes the partitions that actually form a multi-member run.
// Members left over as singletons go back through the same process, so a
// slot that only varies among a handful of stragglers (e.g. after the bulk
// of the group was claimed by another slot) still gets its own pass once
// the slots that dominated the first pass have gone constant within it.
func Disambiguate(g *Group) []Candidate {
	k := len(g.Strings) - 1
	if k == 0 || len(g.Members) == 0 {
		return nil
	}

	var result []Candidate
	pool := g.Members

	for len(pool) > 0 {
		varying := varyingSlots(pool, k)

		if len(varying) == 0 {
			// All tuples identical (duplicate names); one arbitrary sequence.
			result = append(result, Candidate{VaryingSlot: k - 1, Members: pool})
			break
		}

		if len(varying) == 1 {
			cand := Candidate{VaryingSlot: varying[0], Members: pool}
			sortCandidate(cand)
			result = append(result, cand)
			break
		}

		r := varying[len(varying)-1]
		others := varying[:len(varying)-1]

		partitions, order := partitionByIdentity(pool, others)

		var multi []Candidate
		var leftover []member
		for _, key := range order {
			members := partitions[key]
			if len(members) >= 2 {
				cand := Candidate{VaryingSlot: r, Members: members}
				sortCandidate(cand)
				multi = append(multi, cand)
			} else {
				leftover = append(leftover, members...)
			}
		}

		if len(multi) == 0 {
			// No partition along this axis forms a run; every remaining
			// member is its own candidate, and there is no other slot left
			// to retry them against.
			for _, key := range order {
				result = append(result, Candidate{VaryingSlot: r, Members: partitions[key]})
			}
			break
		}

		result = append(result, multi...)
		pool = leftover
	}

	return result
}

// partitionByIdentity groups pool by the values at the given slots,
// returning the partition map alongside first-seen key order.
func partitionByIdentity(pool []member, slots []int) (map[string][]member, []string) {
	partitions := make(map[string][]member)
	var order []string
	for _, m := range pool {
		key := identityKey(m, slots)
		if _, ok := partitions[key]; !ok {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], m)
	}
	return partitions, order
}

// varyingSlots returns, in ascending order, the indices of numeric slots
// whose value is not constant across all members.
func varyingSlots(members []member, k int) []int {
	var varying []int
	for slot := 0; slot < k; slot++ {
		first := members[0].numbers[slot].Value
		for _, m := range members[1:] {
			if m.numbers[slot].Value != first {
				varying = append(varying, slot)
				break
			}
		}
	}
	return varying
}

// identityKey builds a comparable key from the values at the given slots,
// used to partition a group by everything except the frame index.
func identityKey(m member, slots []int) string {
	var key string
	for _, slot := range slots {
		key += m.numbers[slot].Digits + "\x00" + string(rune(m.numbers[slot].Sign)) + "\x01"
	}
	return key
}

// sortCandidate sorts a candidate's members ascending by the value at its
// varying slot, per §4.3's ordering rule.
func sortCandidate(c Candidate) {
	sort.SliceStable(c.Members, func(i, j int) bool {
		return c.Members[i].numbers[c.VaryingSlot].Value < c.Members[j].numbers[c.VaryingSlot].Value
	})
}
