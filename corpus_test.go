package foldbench

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want Corpus
	}{
		{"", Corpus{}},
		{"a", Corpus{"a"}},
		{"a\n", Corpus{"a"}},
		{"a\n\n", Corpus{"a", ""}},
		{"\n", Corpus{""}},
		{"a\nb", Corpus{"a", "b"}},
		{"a\r\nb\r\n", Corpus{"a", "b"}},
		{"a\rb", Corpus{"a", "b"}},
		{"a\r\rb", Corpus{"a", "", "b"}},
		{"a\n\nb", Corpus{"a", "", "b"}},
		{"a\u0085b", Corpus{"a", "b"}},
		{"a\u2028b\u2029c", Corpus{"a", "b", "c"}},
		{"caf\u00e9\nna\u00efve\n", Corpus{"caf\u00e9", "na\u00efve"}},
	}
	for _, test := range tests {
		got := SplitLines(test.in)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("SplitLines(%q) = %q; want: %q", test.in, got, test.want)
		}
	}
}

func TestLoadCorpus(t *testing.T) {
	fsys := fstest.MapFS{
		"lines.txt": {Data: []byte("one\ntwo\n\nthree\n")},
		"bom.txt":   {Data: []byte("\xef\xbb\xbfone\ntwo")},
		"empty.txt": {Data: []byte{}},
	}

	c, err := LoadCorpus(fsys, "lines.txt")
	require.NoError(t, err)
	assert.Equal(t, Corpus{"one", "two", "", "three"}, c)

	c, err = LoadCorpus(fsys, "bom.txt")
	require.NoError(t, err)
	assert.Equal(t, Corpus{"one", "two"}, c)

	c, err = LoadCorpus(fsys, "empty.txt")
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestLoadCorpusMissing(t *testing.T) {
	_, err := LoadCorpus(fstest.MapFS{}, "missing.txt")
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "error type: %T", err)
	assert.Equal(t, "missing.txt", ioErr.Name)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = LoadCorpusFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, errors.As(err, &ioErr), "error type: %T", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadCorpusInvalidUTF8(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.txt": {Data: []byte("ok\ncaf\xe9\n")},
	}
	_, err := LoadCorpus(fsys, "bad.txt")
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr), "error type: %T", err)
	assert.Equal(t, "bad.txt", encErr.Name)
	assert.Equal(t, 2, encErr.Line)
	assert.Equal(t, int64(6), encErr.Offset)
}

func TestLoadCorpusFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(name, []byte("a\r\nb\r\n"), 0644))
	c, err := LoadCorpusFile(name)
	require.NoError(t, err)
	assert.Equal(t, Corpus{"a", "b"}, c)
}

func TestCorpusFilter(t *testing.T) {
	c := Corpus{"one", "two", "three"}
	assert.Equal(t, []string{"two"}, c.Filter(PlainContains, "tw"))
	assert.Empty(t, c.Filter(PlainContains, "four"))
	assert.Empty(t, Corpus{}.Filter(PlainContains, "one"))
}
