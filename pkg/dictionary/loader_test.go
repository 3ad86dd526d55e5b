package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `Klingon dictionary header
Some preamble that is ignored.

== start-of-data ==
tlh:	[2] {Qong} [1.2]
pos:	verb
en:	sleep, <go to> sleep
sv:	sova
id:	qong-2

tlh:	{Qo'noS}
pos:	name
en:	Kronos
notes:	homeworld of the
	Klingon Empire
tag:	place; TKD
data:	a; b
id:	qonos

== section ==
tlh:	{-Daq}
pos:	noun suffix type 5
id:	daq

tlh:	{nIteb}
pos:	adverbial

== end-of-data ==
tlh:	{ignored}
id:	ignored
`

func TestLoad(t *testing.T) {
	words, err := Load(strings.NewReader(sampleSource))
	require.NoError(t, err)
	require.Len(t, words, 3)

	qong := words[0]
	assert.Equal(t, "Qong", qong.Headword)
	assert.Equal(t, 2, qong.Homonym)
	assert.Equal(t, 1, qong.Sense)
	assert.Equal(t, 2, qong.Subsense)
	assert.Equal(t, Verb, qong.POS)
	assert.Equal(t, []string{"sleep", "<go to> sleep"}, qong.English)
	assert.Equal(t, []string{"sova"}, qong.Swedish)
	assert.Equal(t, "qong-2", qong.ID)

	qonos := words[1]
	assert.Equal(t, "Qo'noS", qonos.Headword)
	assert.Equal(t, 1, qonos.Homonym)
	assert.Equal(t, Name, qonos.POS)
	assert.Equal(t, "homeworld of the\tKlingon Empire", qonos.Fields["notes:"])
	assert.Equal(t, []string{"place", "TKD"}, qonos.Tags)
	assert.Equal(t, []string{"a", "b"}, qonos.Data)

	daq := words[2]
	assert.Equal(t, "-Daq", daq.Headword)
	assert.Equal(t, NounSuffix5, daq.POS)
	assert.Empty(t, daq.Fields)
}

func TestLoadTlhForms(t *testing.T) {
	testCases := []struct {
		name     string
		tlh      string
		headword string
		homonym  int
		sense    int
		subsense int
	}{
		{"bare", "{Qapla'}", "Qapla'", 1, 1, 1},
		{"homonym", "[3] {Qong}", "Qong", 3, 1, 1},
		{"sense", "{Qong} [4]", "Qong", 1, 4, 1},
		{"sense and subsense", "{Qong} [4.2]", "Qong", 1, 4, 2},
		{"subsense only", "{Qong} [.5]", "Qong", 1, 1, 5},
		{"bound prefix", "{bI-}", "bI-", 1, 1, 1},
		{"malformed keeps defaults", "Qong", "", 1, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := startMarker + "\ntlh:\t" + tc.tlh + "\nid:\tx\n"
			words, err := Load(strings.NewReader(src))
			require.NoError(t, err)
			require.Len(t, words, 1)
			assert.Equal(t, tc.headword, words[0].Headword)
			assert.Equal(t, tc.homonym, words[0].Homonym)
			assert.Equal(t, tc.sense, words[0].Sense)
			assert.Equal(t, tc.subsense, words[0].Subsense)
		})
	}
}

func TestLoadContinuationWithoutFreeformField(t *testing.T) {
	src := startMarker + "\ntlh:\t{Qong}\nen:\tsleep\n\tmore\nid:\tx\n"
	words, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, []string{"sleep"}, words[0].English)
	assert.Empty(t, words[0].Fields)
}

func TestLoadContinuationSkipsKnownFields(t *testing.T) {
	src := startMarker + "\ntlh:\t{Qong}\nnotes:\tfirst\nen:\tsleep\n\tsecond\nid:\tx\n"
	words, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, []string{"sleep"}, words[0].English)
	assert.Equal(t, map[string]string{"notes:": "first\tsecond"}, words[0].Fields)
}

func TestLoadFlushesAtEOF(t *testing.T) {
	src := startMarker + "\ntlh:\t{Qong}\nid:\tx"
	words, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "x", words[0].ID)
}

func TestLoadWithoutMarker(t *testing.T) {
	_, err := Load(strings.NewReader("tlh:\t{Qong}\nid:\tx\n"))
	assert.ErrorIs(t, err, ErrNoData)
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	d, err := LoadFile(writeSource(t, "dict.zdb", sampleSource))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Len(t, d.English("go to"), 1)
	assert.Len(t, d.ByPOS(Name), 1)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.zdb"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unbalanced translation", func(t *testing.T) {
		src := startMarker + "\ntlh:\t{Qong}\nen:\t<sleep\nid:\tx\n"
		_, err := LoadFile(writeSource(t, "dict.zdb", src))
		assert.ErrorIs(t, err, ErrUnbalancedBrackets)
	})

	t.Run("conflicting ids", func(t *testing.T) {
		src := startMarker + "\ntlh:\t{Qong}\nid:\tx\n\ntlh:\t{ghoS}\nid:\tx\n"
		_, err := LoadFile(writeSource(t, "dict.zdb", src))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}
