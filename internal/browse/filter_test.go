package browse

import "testing"

func TestCompileFilters_EmptyMatchesEverything(t *testing.T) {
	filters, err := CompileFilters(nil)
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}
	if !Match(filters, "anything.txt") {
		t.Error("Match() with no filters should match everything")
	}
}

func TestCompileFilters_GlobStar(t *testing.T) {
	filters, err := CompileFilters([]string{"*.exr"})
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}
	if !Match(filters, "render.0001.exr") {
		t.Error("Match() should match *.exr against render.0001.exr")
	}
	if Match(filters, "render.0001.dpx") {
		t.Error("Match() should not match *.exr against render.0001.dpx")
	}
}

func TestCompileFilters_Question(t *testing.T) {
	filters, err := CompileFilters([]string{"a.?.exr"})
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}
	if !Match(filters, "a.1.exr") {
		t.Error("Match() should match a.?.exr against a.1.exr")
	}
	if Match(filters, "a.12.exr") {
		t.Error("Match() should not match a.?.exr against a.12.exr (two chars)")
	}
}

func TestCompileFilters_CharacterClass(t *testing.T) {
	filters, err := CompileFilters([]string{"a.[0-2].exr"})
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}
	if !Match(filters, "a.1.exr") {
		t.Error("Match() should match character class [0-2] against 1")
	}
	if Match(filters, "a.5.exr") {
		t.Error("Match() should not match character class [0-2] against 5")
	}
}

func TestCompileFilters_MultipleFiltersOrTogether(t *testing.T) {
	filters, err := CompileFilters([]string{"*.exr", "*.dpx"})
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}
	if !Match(filters, "a.dpx") || !Match(filters, "b.exr") {
		t.Error("Match() should match any of multiple filter patterns")
	}
	if Match(filters, "c.txt") {
		t.Error("Match() should not match a pattern absent from the filter list")
	}
}
