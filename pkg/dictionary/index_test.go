package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headwords(words []*Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Headword
	}
	return out
}

func ids(words []*Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestBuildIndices(t *testing.T) {
	qong := word("1", "Qong", Verb)
	qong.English = []string{"sleep"}
	qong.Swedish = []string{"sova"}
	qong2 := word("2", "Qong", Verb)
	qong2.Sense = 2
	qong2.English = []string{"<go to> sleep"}
	daq := word("3", "-Daq", NounSuffix5)
	daq.English = []string{"in, at"}
	qonos := word("4", "Qo'noS", Name)
	qonos.English = []string{"<Kronos>", "Kronos"}

	d, err := Build([]Word{qong, qong2, daq, qonos})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Len(t, d.Words(), 4)

	w, ok := d.ByID("3")
	require.True(t, ok)
	assert.Equal(t, "-Daq", w.Headword)
	_, ok = d.ByID("missing")
	assert.False(t, ok)

	assert.Len(t, d.Lookup("Qong"), 2)
	assert.Empty(t, d.Lookup("Daq"))
	assert.Len(t, d.ByPOS(Verb), 2)
	assert.Empty(t, d.ByPOS(Numeral))

	// "<go to> sleep" indexes "go to" and "go to sleep", not "sleep"
	assert.Equal(t, []string{"1"}, ids(d.English("sleep")))
	assert.Equal(t, []string{"2"}, ids(d.English("go to")))
	assert.Equal(t, []string{"2"}, ids(d.English("go to sleep")))
	assert.Equal(t, []string{"Qong"}, headwords(d.Swedish("sova")))
	// repeated terms of one record index it once
	assert.Len(t, d.English("Kronos"), 1)
}

func TestBuildSortsLongestFirst(t *testing.T) {
	d, err := Build([]Word{
		word("1", "Qo", Noun),
		word("2", "Qo'noS", Noun),
		word("3", "Qe'", Noun),
		word("4", "bIQ", Noun),
		word("5", "Hol", Noun),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Qo'noS", "Hol", "Qe'", "bIQ", "Qo"}, headwords(d.ByPOS(Noun)))
}

func TestBuildCountsCanonicalLength(t *testing.T) {
	d, err := Build([]Word{
		word("1", "lu-", VerbPrefix),
		word("2", "bI-", VerbPrefix),
		word("3", "vI", VerbPrefix),
		word("4", "Da-", VerbPrefix),
		word("5", "jI-", VerbPrefix),
		word("6", "pe-", VerbPrefix),
		word("7", "qa-", VerbPrefix),
		word("8", "tlh", VerbPrefix),
	})
	require.NoError(t, err)
	// "tlh" is longest; the hyphen of bound prefixes does not count
	assert.Equal(t, "tlh", d.ByPOS(VerbPrefix)[0].Headword)
	assert.Equal(t, "Da-", d.ByPOS(VerbPrefix)[1].Headword)
}

func TestBuildDuplicateIDs(t *testing.T) {
	a := word("1", "Qapla'", Exclamation)

	t.Run("identical duplicate is dropped", func(t *testing.T) {
		d, err := Build([]Word{a, a})
		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
		assert.Len(t, d.Lookup("Qapla'"), 1)
	})

	t.Run("conflicting duplicate fails", func(t *testing.T) {
		b := word("1", "Qapla'", Noun)
		_, err := Build([]Word{a, b})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestBuildUnbalancedTranslation(t *testing.T) {
	w := word("1", "Qapla'", Exclamation)
	w.Swedish = []string{"<framgång"}
	_, err := Build([]Word{w})
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)
}

func TestWithPrefix(t *testing.T) {
	d, err := Build([]Word{
		word("1", "tlhIngan", Noun),
		word("2", "tlhegh", Noun),
		word("3", "tlhutlh", Verb),
		word("4", "ta'", Noun),
		word("5", "-", Noun),
		word("6", "tlhIngan", Noun),
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		pos      POS
		prefix   string
		expected []string
	}{
		{"shared prefix", Noun, "tlh", []string{"tlhIngan", "tlhIngan", "tlhegh"}},
		{"single letter", Noun, "t", []string{"ta'", "tlhIngan", "tlhIngan", "tlhegh"}},
		{"other pos", Verb, "tlh", []string{"tlhutlh"}},
		{"case sensitive", Noun, "Tlh", nil},
		{"no bucket", Numeral, "t", nil},
		{"full word", Noun, "tlhegh", []string{"tlhegh"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found := d.WithPrefix(tc.pos, tc.prefix)
			if tc.expected == nil {
				assert.Empty(t, found)
				return
			}
			assert.Equal(t, tc.expected, headwords(found))
		})
	}
}

func TestWithPrefixMatchesCanonicalForm(t *testing.T) {
	d, err := Build([]Word{
		word("1", "bI-", VerbPrefix),
		word("2", "-Daq", NounSuffix5),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bI-"}, headwords(d.WithPrefix(VerbPrefix, "bI")))
	assert.Empty(t, d.WithPrefix(VerbPrefix, "bI-"))
	assert.Equal(t, []string{"-Daq"}, headwords(d.WithPrefix(NounSuffix5, "-D")))
}
