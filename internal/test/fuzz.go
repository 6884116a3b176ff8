package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Letters of the scripts the fold benchmarks care about. Scripts where
// canonical composition involves spacing marks are left out.
var letterRunes = visitTable(rangetable.Merge(
	unicode.Latin,
	unicode.Greek,
	unicode.Cyrillic,
), unicode.IsLetter)

// Nonspacing marks from the combining diacritical mark blocks.
var markRunes = visitTable(unicode.Mn, func(r rune) bool {
	switch {
	case 0x0300 <= r && r <= 0x036F,
		0x1AB0 <= r && r <= 0x1AFF,
		0x1DC0 <= r && r <= 0x1DFF,
		0x20D0 <= r && r <= 0x20FF,
		0xFE20 <= r && r <= 0xFE2F:
		return true
	}
	return false
})

// LetterRunes returns the letters used to generate random strings.
func LetterRunes() []rune { return letterRunes }

// MarkRunes returns the combining marks used to generate random strings.
func MarkRunes() []rune { return markRunes }

func visitTable(rt *unicode.RangeTable, keep func(rune) bool) []rune {
	var rs []rune
	rangetable.Visit(rt, func(r rune) {
		if keep(r) {
			rs = append(rs, r)
		}
	})
	return rs
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// RandMarked returns a string of n letters with random case separated by the
// occasional space. About half of the letters carry one to three combining
// marks.
func RandMarked(rr *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && rr.Intn(8) == 0 {
			b.WriteByte(' ')
		}
		var r rune
		if rr.Intn(4) == 0 {
			r = rune('a' + rr.Intn(26))
		} else {
			r = letterRunes[rr.Intn(len(letterRunes))]
		}
		if rr.Intn(2) == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		if rr.Intn(2) == 0 {
			for j := rr.Intn(3); j >= 0; j-- {
				b.WriteRune(markRunes[rr.Intn(len(markRunes))])
			}
		}
	}
	return b.String()
}

// A FuzzTest is passed to the function run by RunRandomTest.
type FuzzTest struct {
	testing.TB
	Rand *rand.Rand
}

// RandMarked returns a random marked string of up to max letters.
func (t *FuzzTest) RandMarked(max int) string {
	return RandMarked(t.Rand, t.Rand.Intn(max)+1)
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		seeds = append(seeds, cryptoRandInt(t))
	}
	return seeds
}

// RunRandomTest calls fn repeatedly with random generators seeded with both
// fixed and random seeds. Each seed runs as a parallel subtest named by the
// seed so failures can be reproduced.
func RunRandomTest(t *testing.T, fn func(t *FuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	count := 1_000
	if testing.Short() {
		count /= 4
	}
	if *exhaustiveFuzz {
		count = 100_000
	}
	for _, seed := range randomTestSeeds(t) {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			tt := &FuzzTest{TB: t, Rand: rand.New(rand.NewSource(seed))}
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
	}
}
