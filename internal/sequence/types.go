// Package sequence implements the file-sequence detection engine: decomposing
// filenames into alternating string and numeric runs, grouping filenames that
// share a common pattern, disambiguating which numeric slot is the frame
// index, and deriving padding, step, and range for the resulting sequences.
package sequence

import "fmt"

// Sign records how a numeric token's sign was written, when negative-number
// detection is enabled.
type Sign int

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// NumberToken represents one numeric run inside a filename.
type NumberToken struct {
	// Digits is the raw decimal digit string, without sign.
	Digits string
	// Sign is only meaningful when negative-number detection is enabled.
	Sign Sign
	// Value is the signed integer value of the token.
	Value int64
	// NbDigits is the digit count of Digits.
	NbDigits int
	// Padding is the declared padding width: NbDigits when Digits starts
	// with '0' and NbDigits > 1, otherwise 0.
	Padding int
}

// Raw renders the token the way it appeared in the source filename
// (sign, if any, followed by the original digit string).
func (t NumberToken) Raw() string {
	switch t.Sign {
	case SignPlus:
		return "+" + t.Digits
	case SignMinus:
		return "-" + t.Digits
	default:
		return t.Digits
	}
}

// newNumberToken builds a NumberToken from a raw digit string and sign,
// computing Value, NbDigits, and Padding (a leading zero implies strict
// padding to NbDigits; otherwise Padding is 0).
func newNumberToken(digits string, sign Sign) (NumberToken, error) {
	value, err := parseDigits(digits)
	if err != nil {
		return NumberToken{}, err
	}
	if sign == SignMinus {
		value = -value
	}

	padding := 0
	if len(digits) > 1 && digits[0] == '0' {
		padding = len(digits)
	}

	return NumberToken{
		Digits:   digits,
		Sign:     sign,
		Value:    value,
		NbDigits: len(digits),
		Padding:  padding,
	}, nil
}

// parseDigits converts a decimal digit string to an int64, returning
// an *OverflowError if it does not fit.
func parseDigits(digits string) (int64, error) {
	var value int64
	for _, r := range digits {
		d := int64(r - '0')
		if value > (maxInt64-d)/10 {
			return 0, &OverflowError{Digits: digits}
		}
		value = value*10 + d
	}
	return value, nil
}

const maxInt64 = int64(1<<63 - 1)

// Decomposition splits a filename into an alternation of literal string
// runs and numeric runs: Strings has one more element than Numbers, and
// interleaving them (Strings[0], Numbers[0], Strings[1], Numbers[1], ...)
// reconstructs the original name.
type Decomposition struct {
	Strings []string
	Numbers []NumberToken
}

// HasNumber reports whether the decomposition contains at least one numeric
// run.
func (d Decomposition) HasNumber() bool {
	return len(d.Numbers) > 0
}

// Filename reconstructs the original filename by interleaving Strings and
// Numbers.
func (d Decomposition) Filename() string {
	var out string
	for i, s := range d.Strings {
		out += s
		if i < len(d.Numbers) {
			out += d.Numbers[i].Raw()
		}
	}
	return out
}

// Sequence is a derived entity describing one detected numbered series.
type Sequence struct {
	Directory     string
	Prefix        string
	Suffix        string
	Padding       int
	StrictPadding bool
	FirstTime     int64
	LastTime      int64
	Step          int64
	NbFiles       int
}

// NbMissingFiles returns the count of frame indices within [FirstTime,
// LastTime] at Step that were not observed among NbFiles.
func (s Sequence) NbMissingFiles() int64 {
	total := (s.LastTime-s.FirstTime)/s.Step + 1
	return total - int64(s.NbFiles)
}

// RenderNumber renders a signed frame index with the sequence's padding
// policy.
func (s Sequence) RenderNumber(t int64) string {
	return renderNumber(t, s.Padding, s.StrictPadding)
}

// FrameName renders the filename for frame t.
func (s Sequence) FrameName(t int64) string {
	return s.Prefix + s.RenderNumber(t) + s.Suffix
}

func renderNumber(t int64, padding int, strict bool) string {
	sign := ""
	abs := t
	if t < 0 {
		sign = "-"
		abs = -t
	}
	digits := fmt.Sprintf("%d", abs)
	if padding > 0 {
		if strict || len(digits) < padding {
			for len(digits) < padding {
				digits = "0" + digits
			}
		}
	}
	return sign + digits
}

// ItemKind classifies one entry emitted by the Browse Orchestrator.
type ItemKind int

const (
	ItemFile ItemKind = iota
	ItemFolder
	ItemSequence
)

// Item is the tagged union over {file, folder, sequence} emitted by a
// directory scan.
type Item struct {
	Kind      ItemKind
	Directory string
	// Name is set for ItemFile and ItemFolder.
	Name string
	// Seq is set for ItemSequence.
	Seq Sequence
}
