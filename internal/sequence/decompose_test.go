package sequence

import "testing"

func TestDecompose_NoDigits(t *testing.T) {
	d, err := Decompose("readme.txt", DecomposeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.HasNumber() {
		t.Fatalf("expected no numbers, got %+v", d.Numbers)
	}
	if len(d.Strings) != 1 || d.Strings[0] != "readme.txt" {
		t.Fatalf("unexpected strings: %+v", d.Strings)
	}
}

func TestDecompose_Reconstructs(t *testing.T) {
	names := []string{
		"a.0001.exr",
		"shot2_take07_frame0100.jpg",
		"a1b2c1.j2c",
		"1.23",
		"noext",
		"-01.txt",
	}

	for _, name := range names {
		d, err := Decompose(name, DecomposeOptions{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got := d.Filename(); got != name {
			t.Errorf("%s: reconstruct = %q", name, got)
		}
		if len(d.Strings) != len(d.Numbers)+1 {
			t.Errorf("%s: strings len %d, numbers len %d", name, len(d.Strings), len(d.Numbers))
		}
	}
}

func TestDecompose_AdjacentDigitGroups(t *testing.T) {
	d, err := Decompose("1.23", DecomposeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Numbers) != 2 {
		t.Fatalf("expected 2 numbers, got %d", len(d.Numbers))
	}
	if d.Numbers[0].Value != 1 || d.Numbers[1].Value != 23 {
		t.Fatalf("unexpected values: %+v", d.Numbers)
	}
	if d.Strings[1] != "." {
		t.Fatalf("expected separator '.', got %q", d.Strings[1])
	}
}

func TestDecompose_NegativeDisabled(t *testing.T) {
	d, err := Decompose("foo-01.png", DecomposeOptions{Negative: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Numbers) != 1 || d.Numbers[0].Value != 1 {
		t.Fatalf("unexpected numbers: %+v", d.Numbers)
	}
	if d.Strings[0] != "foo-" {
		t.Fatalf("expected prefix 'foo-', got %q", d.Strings[0])
	}
}

func TestDecompose_NegativeEnabled(t *testing.T) {
	d, err := Decompose("foo-01.png", DecomposeOptions{Negative: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Numbers) != 1 {
		t.Fatalf("expected 1 number, got %d", len(d.Numbers))
	}
	if d.Numbers[0].Value != -1 || d.Numbers[0].Sign != SignMinus {
		t.Fatalf("unexpected number: %+v", d.Numbers[0])
	}
	if d.Strings[0] != "foo" {
		t.Fatalf("expected prefix 'foo', got %q", d.Strings[0])
	}
}

func TestDecompose_NegativeNotArithmetic(t *testing.T) {
	// A '-' preceded by a digit is not a sign even with Negative enabled.
	d, err := Decompose("12-3.png", DecomposeOptions{Negative: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Numbers) != 2 || d.Numbers[0].Value != 12 || d.Numbers[1].Value != 3 {
		t.Fatalf("unexpected numbers: %+v", d.Numbers)
	}
	if d.Strings[1] != "-" {
		t.Fatalf("expected separator '-', got %q", d.Strings[1])
	}
}

func TestDecompose_PaddingAndStrictness(t *testing.T) {
	d, err := Decompose("a.0001.exr", DecomposeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok := d.Numbers[0]
	if tok.Digits != "0001" || tok.Value != 1 || tok.NbDigits != 4 || tok.Padding != 4 {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestDecompose_Overflow(t *testing.T) {
	_, err := Decompose("a99999999999999999999999.exr", DecomposeOptions{})
	if err == nil {
		t.Fatal("expected overflow error")
	}
	var overflow *OverflowError
	if !asOverflow(err, &overflow) {
		t.Fatalf("expected OverflowError, got %T: %v", err, err)
	}
}

func asOverflow(err error, target **OverflowError) bool {
	if o, ok := err.(*OverflowError); ok {
		*target = o
		return true
	}
	return false
}
