package sequence

import "testing"

// buildFromNames runs the full pipeline (decompose, group, disambiguate,
// build) over a flat name list in one directory, returning the resulting
// sequences in disambiguation order.
func buildFromNames(t *testing.T, names []string, opts DecomposeOptions) []Sequence {
	t.Helper()

	gm := NewGroupMap()
	for _, name := range names {
		d, err := Decompose(name, opts)
		if err != nil {
			t.Fatalf("decompose %s: %v", name, err)
		}
		if !d.HasNumber() {
			t.Fatalf("%s: expected at least one number", name)
		}
		gm.Insert(name, d)
	}

	var out []Sequence
	for _, g := range gm.Groups() {
		for _, cand := range Disambiguate(g) {
			out = append(out, Build("", g.Strings, cand))
		}
	}
	return out
}

func TestScenario1_SimplePaddedRun(t *testing.T) {
	seqs := buildFromNames(t, []string{"a.0001.exr", "a.0002.exr", "a.0003.exr"}, DecomposeOptions{})
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	s := seqs[0]
	if s.Prefix != "a." || s.Suffix != ".exr" {
		t.Fatalf("unexpected prefix/suffix: %q %q", s.Prefix, s.Suffix)
	}
	if s.Padding != 4 || !s.StrictPadding {
		t.Fatalf("unexpected padding: %d strict=%v", s.Padding, s.StrictPadding)
	}
	if s.FirstTime != 1 || s.LastTime != 3 || s.Step != 1 {
		t.Fatalf("unexpected range: first=%d last=%d step=%d", s.FirstTime, s.LastTime, s.Step)
	}
	if s.NbFiles != 3 || s.NbMissingFiles() != 0 {
		t.Fatalf("unexpected counts: nbFiles=%d missing=%d", s.NbFiles, s.NbMissingFiles())
	}
}

func TestScenario2_SparseUnpadded(t *testing.T) {
	seqs := buildFromNames(t, []string{"a.1.exr", "a.2.exr", "a.4.exr"}, DecomposeOptions{})
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	s := seqs[0]
	if s.Padding != 0 || s.StrictPadding {
		t.Fatalf("unexpected padding: %d strict=%v", s.Padding, s.StrictPadding)
	}
	if s.FirstTime != 1 || s.LastTime != 4 || s.Step != 1 {
		t.Fatalf("unexpected range: first=%d last=%d step=%d", s.FirstTime, s.LastTime, s.Step)
	}
	if s.NbFiles != 3 || s.NbMissingFiles() != 1 {
		t.Fatalf("unexpected counts: nbFiles=%d missing=%d", s.NbFiles, s.NbMissingFiles())
	}
}

func TestScenario3_MixedWidthNoLeadingZero(t *testing.T) {
	seqs := buildFromNames(t, []string{"a.10.exr", "a.20.exr", "a.30.exr"}, DecomposeOptions{})
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	s := seqs[0]
	if s.FirstTime != 10 || s.LastTime != 30 || s.Step != 10 {
		t.Fatalf("unexpected range: first=%d last=%d step=%d", s.FirstTime, s.LastTime, s.Step)
	}
	// No leading zero observed on any member, so padding collapses to 0
	// even though every tuple has nbDigits=2.
	if s.Padding != 0 || s.StrictPadding {
		t.Fatalf("unexpected padding: %d strict=%v", s.Padding, s.StrictPadding)
	}
}

func TestScenario4_ThreeSequencesByMiddleSlot(t *testing.T) {
	names := []string{
		"a1b2c1.j2c", "a1b2c2.j2c", "a1b2c3.j2c",
		"a1b3c2.j2c", "a1b3c3.j2c", "a1b3c6.j2c",
		"a1b9c2.j2c", "a1b9c6.j2c",
	}
	seqs := buildFromNames(t, names, DecomposeOptions{})
	if len(seqs) != 3 {
		t.Fatalf("expected 3 sequences, got %d", len(seqs))
	}

	total := 0
	for _, s := range seqs {
		total += s.NbFiles
	}
	if total != len(names) {
		t.Fatalf("expected %d total members, got %d", len(names), total)
	}
}

func TestScenario5_RightmostSlotWins(t *testing.T) {
	names := []string{
		"a1b2c1.j2c", "a1b2c2.j2c", "a1b2c3.j2c",
		"a1b3c4.j2c", "a1b4c4.j2c", "a1b5c4.j2c",
	}
	seqs := buildFromNames(t, names, DecomposeOptions{})
	if len(seqs) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(seqs))
	}

	foundC := false
	foundB := false
	for _, s := range seqs {
		switch {
		case s.NbFiles == 3 && s.FirstTime == 1 && s.LastTime == 3:
			foundC = true
		case s.NbFiles == 3 && s.FirstTime == 3 && s.LastTime == 5:
			foundB = true
		}
	}
	if !foundC {
		t.Fatalf("expected a sequence varying in c (b=2, c in [1,3])")
	}
	if !foundB {
		t.Fatalf("expected a sequence varying in b (c=4, b in [3,5])")
	}
}

func TestGCDStep(t *testing.T) {
	seqs := buildFromNames(t, []string{"f.1.png", "f.4.png", "f.7.png", "f.10.png"}, DecomposeOptions{})
	if len(seqs) != 1 {
		t.Fatalf("expected 1 sequence, got %d", len(seqs))
	}
	if seqs[0].Step != 3 {
		t.Fatalf("expected step 3, got %d", seqs[0].Step)
	}

	seqs2 := buildFromNames(t, []string{"f.1.png", "f.4.png", "f.10.png"}, DecomposeOptions{})
	if seqs2[0].Step != 3 || seqs2[0].NbMissingFiles() != 1 {
		t.Fatalf("unexpected: step=%d missing=%d", seqs2[0].Step, seqs2[0].NbMissingFiles())
	}
}

func TestRenderNumber_StrictVsLoose(t *testing.T) {
	s := Sequence{Padding: 4, StrictPadding: true}
	if got := s.RenderNumber(5); got != "0005" {
		t.Fatalf("strict render = %q", got)
	}

	loose := Sequence{Padding: 4, StrictPadding: false}
	if got := loose.RenderNumber(5); got != "0005" {
		t.Fatalf("loose render under width = %q", got)
	}
	if got := loose.RenderNumber(123456); got != "123456" {
		t.Fatalf("loose render over width = %q", got)
	}
}

func TestRenderNumber_Negative(t *testing.T) {
	s := Sequence{Padding: 3, StrictPadding: true}
	if got := s.RenderNumber(-5); got != "-005" {
		t.Fatalf("negative render = %q", got)
	}
}

func TestInvariant_FrameWithinRangeAndStep(t *testing.T) {
	seqs := buildFromNames(t, []string{"f.01.png", "f.03.png", "f.09.png"}, DecomposeOptions{})
	s := seqs[0]
	if s.Step != 2 {
		t.Fatalf("expected step 2, got %d", s.Step)
	}
	for t2 := s.FirstTime; t2 <= s.LastTime; t2 += s.Step {
		delta := t2 - s.FirstTime
		if delta%s.Step != 0 {
			t.Fatalf("time %d not reachable by step %d", t2, s.Step)
		}
	}
	if s.NbFiles+int(s.NbMissingFiles()) != int((s.LastTime-s.FirstTime)/s.Step)+1 {
		t.Fatalf("invariant 6 violated")
	}
}
