package ehdr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"envi-binreader/envi/eerr"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `ENVI
description = {
  Calibrated radiance,
  flight line 3}
samples = 3
Lines   = 2
BANDS = 1
header offset = 0
data type = 4
interleave = bil
byte order = 0
wavelength = { 400.5, 410.25 , 420.0 }
fwhm = {1.0 2.0 3.0}
; a comment line
not a pair
empty =
Samples = 3
`

func parseSample(t *testing.T) *Store {
	store, err := Parse(strings.NewReader(sampleHeader))
	require.NoError(t, err)
	return store
}

func TestLookup_CaseInsensitive(t *testing.T) {
	store := parseSample(t)
	for _, key := range []string{"lines", "LINES", "Lines", "lInEs"} {
		value, err := store.Lookup(key, true)
		assert.NoError(t, err)
		assert.Equal(t, "2", value, key)
	}
}

func TestLookup_Absent(t *testing.T) {
	store := parseSample(t)

	value, err := store.Lookup("map info", false)
	assert.NoError(t, err)
	assert.Equal(t, "", value)

	_, err = store.Lookup("Map Info", true)
	missing := eerr.ErrMissingHeaderItem{}
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Map Info", missing.Key)
	assert.Equal(t, eerr.KindMissingHeaderItem, eerr.KindOf(err))
}

func TestValue_EmptyVersusAbsent(t *testing.T) {
	store := parseSample(t)

	value, ok := store.Value("empty")
	assert.True(t, ok)
	assert.Equal(t, "", value)

	_, ok = store.Value("absent")
	assert.False(t, ok)
}

func TestParse_MultiLineBraces(t *testing.T) {
	store := parseSample(t)
	value, ok := store.Value("description")
	assert.True(t, ok)
	assert.Equal(t, "{ Calibrated radiance, flight line 3}", value)
}

func TestParse_SkipsMagicCommentsAndJunk(t *testing.T) {
	store := parseSample(t)
	assert.False(t, lo.Contains(store.Keys(), "envi"))
	assert.False(t, lo.Contains(store.Keys(), "not a pair"))
	assert.Equal(
		t,
		[]string{
			"description", "samples", "lines", "bands", "header offset", "data type",
			"interleave", "byte order", "wavelength", "fwhm", "empty",
		},
		store.Keys(),
	)
}

func TestParse_DuplicateKeyOverwrites(t *testing.T) {
	store, err := Parse(strings.NewReader("bands = 1\nBands = 7\n"))
	require.NoError(t, err)
	value, _ := store.Value("BANDS")
	assert.Equal(t, "7", value)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Bands", store.Entries()[0].Key)
}

func TestParse_Latin1Fallback(t *testing.T) {
	store, err := Parse(strings.NewReader("sensor = caf\xe9\n"))
	require.NoError(t, err)
	value, _ := store.Value("sensor")
	assert.Equal(t, "café", value)
}

func TestLookupIndexed(t *testing.T) {
	store := parseSample(t)
	tests := map[string]struct {
		key   string
		index int
		out   string
		ok    bool
	}{
		"comma first":  {"wavelength", 0, "400.5", true},
		"comma spaces": {"Wavelength", 1, "410.25", true},
		"comma last":   {"WAVELENGTH", 2, "420.0", true},
		"whitespace":   {"fwhm", 1, "2.0", true},
		"scalar":       {"samples", 0, "3", true},
		"out of range": {"wavelength", 3, "", false},
		"negative":     {"wavelength", -1, "", false},
		"absent":       {"gain", 0, "", false},
		"empty value":  {"empty", 0, "", false},
	}
	for name, test := range tests {
		item, ok := store.Item(test.key, test.index)
		assert.Equal(t, test.ok, ok, name)
		assert.Equal(t, test.out, item, name)

		value, err := store.LookupIndexed(test.key, test.index, false)
		assert.NoError(t, err, name)
		assert.Equal(t, test.out, value, name)

		_, err = store.LookupIndexed(test.key, test.index, true)
		if test.ok {
			assert.NoError(t, err, name)
		} else {
			missing := eerr.ErrMissingHeaderItem{}
			assert.True(t, errors.As(err, &missing), name)
			assert.Equal(t, test.index, missing.Index, name)
		}
	}
}

func TestTidy(t *testing.T) {
	tests := map[string]struct {
		in   string
		wrap bool
		out  string
	}{
		"plain":      {"radiance", false, "radiance"},
		"newlines":   {"line one\r\nline two\nthree", false, "line one line two three"},
		"braces":     {"a {b} c", false, "a (b) c"},
		"wrapped":    {"  x,   y ", true, "{x, y}"},
		"empty wrap": {"", true, "{}"},
	}
	for name, test := range tests {
		assert.Equal(t, test.out, Tidy(test.in, test.wrap), name)
	}
}

func TestDump(t *testing.T) {
	store, err := Parse(strings.NewReader("ENVI\nSamples = 3\nwavelength = {1,\n 2}\nbands=1\n"))
	require.NoError(t, err)
	assert.Equal(t, "Samples = 3\nwavelength = {1, 2}\nbands = 1\n", store.Dump())

	reparsed, err := Parse(strings.NewReader(store.Dump()))
	require.NoError(t, err)
	assert.Equal(t, store.Entries(), reparsed.Entries())
}

func TestStore_MarshalJSON(t *testing.T) {
	store, err := Parse(strings.NewReader("Samples = 3\nbands = 1\n"))
	require.NoError(t, err)
	bs, err := store.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Samples":"3","bands":"1"}`, string(bs))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.hdr")
	require.NoError(t, os.WriteFile(path, []byte(sampleHeader), 0644))

	store, err := Load(path)
	require.NoError(t, err)
	value, _ := store.Value("data type")
	assert.Equal(t, "4", value)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hdr"))
	headerRead := eerr.ErrHeaderRead{}
	require.True(t, errors.As(err, &headerRead))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
