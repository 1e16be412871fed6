package sequence

// Build derives a Sequence's prefix, suffix, padding, strict-padding,
// step, range, and file count from a group's Strings, a candidate
// (varying slot + sorted members), and the owning directory.
func Build(directory string, strs []string, c Candidate) Sequence {
	r := c.VaryingSlot
	first := c.Members[0]

	prefix := strs[0]
	for i := 0; i < r; i++ {
		prefix += first.numbers[i].Raw() + strs[i+1]
	}

	suffix := strs[r+1]
	for i := r + 1; i < len(first.numbers); i++ {
		suffix += first.numbers[i].Raw() + strs[i+1]
	}

	padding, strict := derivePadding(c)
	step := deriveStep(c)

	return Sequence{
		Directory:     directory,
		Prefix:        prefix,
		Suffix:        suffix,
		Padding:       padding,
		StrictPadding: strict,
		FirstTime:     c.Members[0].numbers[r].Value,
		LastTime:      c.Members[len(c.Members)-1].numbers[r].Value,
		Step:          step,
		NbFiles:       len(c.Members),
	}
}

// derivePadding implements the mixed-padding collapse rule of §4.4: the
// set of non-zero paddings observed at the varying slot must contain at
// most one distinct value, else padding collapses to 0.
func derivePadding(c Candidate) (padding int, strict bool) {
	seen := map[int]bool{}
	hasLeadingZero := false
	for _, m := range c.Members {
		p := m.numbers[c.VaryingSlot].Padding
		if p > 0 {
			seen[p] = true
		}
		if m.numbers[c.VaryingSlot].Digits[0] == '0' {
			hasLeadingZero = true
		}
	}

	switch len(seen) {
	case 0:
		return 0, false
	case 1:
		for p := range seen {
			padding = p
		}
		return padding, hasLeadingZero
	default:
		return 0, false
	}
}

// deriveStep computes the GCD of consecutive deltas at the varying slot,
// per §4.4's "GCD-of-deltas" rule. A single-member candidate has step 1.
func deriveStep(c Candidate) int64 {
	if len(c.Members) < 2 {
		return 1
	}

	var step int64
	for i := 1; i < len(c.Members); i++ {
		delta := c.Members[i].numbers[c.VaryingSlot].Value - c.Members[i-1].numbers[c.VaryingSlot].Value
		if delta < 0 {
			delta = -delta
		}
		step = gcd(step, delta)
	}
	if step == 0 {
		return 1
	}
	return step
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
