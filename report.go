package foldbench

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"
	"unicode"

	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/cpu"
)

// A Result holds the trials of a single Strategy.
type Result struct {
	Strategy  Strategy
	Durations []time.Duration
	// Matches is the set of matching line indexes.
	Matches *roaring.Bitmap
}

// Label returns the name of the strategy r measured.
func (r *Result) Label() string { return r.Strategy.String() }

// Seconds returns the duration of each trial in seconds.
func (r *Result) Seconds() []float64 {
	secs := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		secs[i] = d.Seconds()
	}
	return secs
}

func (r *Result) Min() time.Duration    { return minOf(r.Durations) }
func (r *Result) Median() time.Duration { return median(r.Durations) }
func (r *Result) Mean() time.Duration   { return time.Duration(mean(r.Durations)) }

// A Report is the outcome of a benchmark run.
type Report struct {
	ID             uuid.UUID
	Start          time.Time
	GoVersion      string
	UnicodeVersion string
	GOOS           string
	GOARCH         string
	CPU            []string
	Locale         string
	Term           string
	Lines          int
	Repetitions    int
	Results        []Result
}

func newReport(cfg Config, s *Session) *Report {
	return &Report{
		ID:             uuid.New(),
		Start:          time.Now(),
		GoVersion:      runtime.Version(),
		UnicodeVersion: unicode.Version,
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		CPU:            cpuFeatures(),
		Locale:         s.Tag.String(),
		Term:           s.Term,
		Lines:          len(s.Plain),
		Repetitions:    cfg.Repetitions,
	}
}

// Agree reports whether every result matched the same set of lines.
func (r *Report) Agree() bool {
	var first *roaring.Bitmap
	for i := range r.Results {
		m := r.Results[i].Matches
		if m == nil {
			continue
		}
		if first == nil {
			first = m
		} else if !first.Equals(m) {
			return false
		}
	}
	return true
}

// WriteText writes r to w as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "run:\t%s\n", r.ID)
	fmt.Fprintf(tw, "go:\t%s %s/%s (unicode %s)\n", r.GoVersion, r.GOOS, r.GOARCH, r.UnicodeVersion)
	if len(r.CPU) > 0 {
		fmt.Fprintf(tw, "cpu:\t%v\n", r.CPU)
	}
	fmt.Fprintf(tw, "locale:\t%s\n", r.Locale)
	fmt.Fprintf(tw, "term:\t%q\n", r.Term)
	fmt.Fprintf(tw, "lines:\t%d x %d repetitions\n", r.Lines, r.Repetitions)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "strategy\ttrials\tmin\tmedian\tmean\tmatches\t")
	for i := range r.Results {
		res := &r.Results[i]
		var matches uint64
		if res.Matches != nil {
			matches = res.Matches.GetCardinality()
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6fs\t%.6fs\t%.6fs\t%d\t\n", res.Label(),
			len(res.Durations), res.Min().Seconds(), res.Median().Seconds(),
			res.Mean().Seconds(), matches)
	}
	if !r.Agree() {
		fmt.Fprintln(tw, "\nWARNING: strategies matched different lines")
	}
	return tw.Flush()
}

type jsonResult struct {
	Label   string    `json:"label"`
	Seconds []float64 `json:"seconds"`
	Min     float64   `json:"min"`
	Median  float64   `json:"median"`
	Mean    float64   `json:"mean"`
	Matches []uint32  `json:"matches"`
}

type jsonReport struct {
	ID             string       `json:"id"`
	Start          time.Time    `json:"start"`
	GoVersion      string       `json:"go_version"`
	UnicodeVersion string       `json:"unicode_version"`
	GOOS           string       `json:"goos"`
	GOARCH         string       `json:"goarch"`
	CPU            []string     `json:"cpu,omitempty"`
	Locale         string       `json:"locale"`
	Term           string       `json:"term"`
	Lines          int          `json:"lines"`
	Repetitions    int          `json:"repetitions"`
	Agree          bool         `json:"agree"`
	Results        []jsonResult `json:"results"`
}

// WriteJSON writes r to w as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		ID:             r.ID.String(),
		Start:          r.Start,
		GoVersion:      r.GoVersion,
		UnicodeVersion: r.UnicodeVersion,
		GOOS:           r.GOOS,
		GOARCH:         r.GOARCH,
		CPU:            r.CPU,
		Locale:         r.Locale,
		Term:           r.Term,
		Lines:          r.Lines,
		Repetitions:    r.Repetitions,
		Agree:          r.Agree(),
		Results:        make([]jsonResult, len(r.Results)),
	}
	for i := range r.Results {
		res := &r.Results[i]
		jr := jsonResult{
			Label:   res.Label(),
			Seconds: res.Seconds(),
			Min:     res.Min().Seconds(),
			Median:  res.Median().Seconds(),
			Mean:    res.Mean().Seconds(),
			Matches: []uint32{},
		}
		if res.Matches != nil {
			jr.Matches = res.Matches.ToArray()
		}
		out.Results[i] = jr
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

type number interface {
	constraints.Integer | constraints.Float
}

func minOf[T number](a []T) T {
	if len(a) == 0 {
		return 0
	}
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func median[T number](a []T) T {
	switch len(a) {
	case 0:
		return 0
	case 1:
		return a[0]
	}
	s := slices.Clone(a)
	slices.Sort(s)
	n := len(s) / 2
	if len(s)%2 == 1 {
		return s[n]
	}
	return (s[n-1] + s[n]) / 2
}

func mean[T number](a []T) float64 {
	if len(a) == 0 {
		return 0
	}
	var sum float64
	for _, v := range a {
		sum += float64(v)
	}
	return sum / float64(len(a))
}

func cpuFeatures() []string {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasPOPCNT, "popcnt")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasBMI2, "bmi2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasAVX512BW, "avx512bw")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasCRC32, "crc32")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return feats
}
