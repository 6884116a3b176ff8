package strcase

import (
	"strconv"
	"strings"
	"testing"
)

type IndexTest struct {
	s   string
	sep string
	out int
}

var indexTests = []IndexTest{
	{"", "", 0},
	{"", "a", -1},
	{"", "foo", -1},
	{"fo", "foo", -1},
	{"foo", "foo", 0},
	{"oofofoofooo", "f", 2},
	{"oofofoofooo", "foo", 4},
	{"barfoobarfoo", "foo", 3},
	{"foo", "", 0},
	{"foo", "o", 1},
	{"abcABCabc", "A", 0},
	{"abcVBCabc", "V", 3},
	{"x", "a", -1},
	{"x", "x", 0},
	{"abc", "c", 2},
	{"abc", "x", -1},
	{"xab", "AB", 1},
	{"xabc"[:3], "abc", -1},
	{"xabxc", "abc", -1},
	{"xABCD", "abcd", 1},
	{"x012345678x0123456789", "0123456789", 11},
	{"oxoxoxoxoxoxoxoxoxoxoxoy", "OY", 22},
	{"oxoxoxoxoxoxoxoxoxoxoxox", "oy", -1},
	{"Lorem ipsum MAURIS et elementum", "mauris ET", 12},

	// Unicode strings
	{"oxoxoxoxoxoxoxoxoxoxoxoyoα", "oΑ", 24},
	{"oxoxoxoxoxoxoxoxoxoxoxα", "Α", 22},
	{"abc☻", "abc☻", 0},
	{"abc☻", "ABC☻", 0},
	{"123abc☻", "ABC☻", 3},
	{"ΑΔΕΛΦΟΣΎΝΗΣ", "αδελφοσύνης", 0},
	{"xxΑΔΕΛΦΟΣ", "δελφ", 4},

	// Diacritics are significant.
	{"cafe", "café", -1},
	{"CAFÉ", "café", 0},
	{"café", "cafe", -1},
}

var unicodeIndexTests = []IndexTest{
	// Map Kelvin 'K' (U+212A) to lowercase latin 'k'.
	{"abcK@", "k@", 3},
	{"kk", "KK", 0},
	{"KK", "kk", 0},

	// Map long s 'ſ' (U+017F) to 's'.
	{"xſx", "S", 1},
	{"xſx", "xsx", 0},
}

func runIndexTests(t *testing.T, f func(s, sep string) int, funcName string, testCases []IndexTest) {
	for _, test := range testCases {
		actual := f(test.s, test.sep)
		if actual != test.out {
			t.Errorf("%s(%q,%q) = %v; want %v\n"+
				"Args:\n"+
				"  s:   %s\n"+
				"  sep: %s\n",
				funcName, test.s, test.sep, actual, test.out,
				strconv.QuoteToASCII(test.s),
				strconv.QuoteToASCII(test.sep))
		}
	}
}

func TestIndex(t *testing.T) {
	runIndexTests(t, Index, "Index", indexTests)
}

func TestIndexUnicode(t *testing.T) {
	runIndexTests(t, Index, "Index", unicodeIndexTests)
}

func TestContains(t *testing.T) {
	for _, test := range indexTests {
		got := Contains(test.s, test.sep)
		if want := test.out >= 0; got != want {
			t.Errorf("Contains(%q, %q) = %t; want: %t", test.s, test.sep, got, want)
		}
	}
}

func TestIndexRune(t *testing.T) {
	tests := []struct {
		in   string
		rune rune
		want int
	}{
		{"", 'a', -1},
		{"", '☺', -1},
		{"foo", '☹', -1},
		{"foo", 'o', 1},
		{"foo☺bar", '☺', 3},
		{"foo☺☻☹bar", '☹', 9},
		{"a A x", 'A', 0},
		{"some_text=some_value", '=', 9},
		{"☺a", 'a', 3},
		{"a☻☺b", '☺', 4},
		{"ΑΒΔ", 'δ', 4},
		{"abcK", 'k', 3},
		{"abcK", 'K', 3},

		// RuneError should match any invalid UTF-8 byte sequence.
		{"�", '�', 0},
		{"\xff", '�', 0},
		{"☻x�", '�', len("☻x")},
		{"☻x\xe2\x98", '�', len("☻x")},

		// Invalid rune values should never match.
		{"a☺b☻c☹d\xe2\x98�\xff�\xed\xa0\x80", -1, -1},
		{"a☺b☻c☹d\xe2\x98�\xff�\xed\xa0\x80", 0x110000, -1},
	}
	for _, tt := range tests {
		if got := IndexRune(tt.in, tt.rune); got != tt.want {
			t.Errorf("IndexRune(%q, %d) = %v; want %v", tt.in, tt.rune, got, tt.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		s, t string
		out  bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"ABcd", "ABcd", true},
		{"123abc", "123ABC", true},
		{"αβδ", "ΑΒΔ", true},
		{"abc", "xyz", false},
		{"abc", "XYZ", false},
		{"abcdefghijk", "abcdefghijX", false},
		{"abcdefghijk", "abcdefghijK", true},
		{"abcdefghijK", "abcdefghijK", true},
		{"abcdefghijkz", "abcdefghijKy", false},
		{"1", "2", false},
		{"utf-8", "US-ASCII", false},
		{"é", "e", false},
		{"abc", "ab", false},
		{"ab", "abc", false},
	}
	for _, tt := range tests {
		if out := EqualFold(tt.s, tt.t); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.s, tt.t, out, tt.out)
		}
		if out := EqualFold(tt.t, tt.s); out != tt.out {
			t.Errorf("EqualFold(%#q, %#q) = %v, want %v", tt.t, tt.s, out, tt.out)
		}
	}
}

// Index must agree with strings.Index on lowercase ASCII input.
func TestIndexStdlib(t *testing.T) {
	s := strings.Repeat("lorem ipsum dolor sit amet ", 8) + "mauris et elementum arcu"
	for _, sep := range []string{"lorem", "sit amet", "mauris", "arcu", "elementum arcu", "xyz", "amet l"} {
		want := strings.Index(s, sep)
		if got := Index(s, sep); got != want {
			t.Errorf("Index(%q) = %d; want: %d", sep, got, want)
		}
		if got := Index(strings.ToUpper(s), sep); got != want {
			t.Errorf("Index(ToUpper(s), %q) = %d; want: %d", sep, got, want)
		}
	}
}

var benchmarkLongString = strings.Repeat(" ", 100) + "some_text=some☺value"

func BenchmarkIndex(b *testing.B) {
	s := strings.Repeat("lorem ipsum dolor sit amet ", 64) + "MAURIS ET ELEMENTUM ARCU"
	for i := 0; i < b.N; i++ {
		Index(s, "mauris et elementum arcu")
	}
}

func BenchmarkIndexUnicode(b *testing.B) {
	s := strings.Repeat("αβγδε ", 64) + "ΑΔΕΛΦΟΣΎΝΗΣ"
	for i := 0; i < b.N; i++ {
		Index(s, "αδελφοσύνης")
	}
}

func BenchmarkIndexRuneLongString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IndexRune(benchmarkLongString, '☺')
	}
}
