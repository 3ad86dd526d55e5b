package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTerms(t *testing.T) {
	testCases := []struct {
		name        string
		translation string
		expected    []string
	}{
		{"plain text", "success", []string{"success"}},
		{"empty", "", []string{""}},
		{"single marker", "<Klingon> homeworld", []string{"Klingon", "Klingon homeworld"}},
		{"adjacent markers", "build<strong><er>", []string{"strong", "er", "buildstronger"}},
		{"nested markers", "be <very> <<good> luck>", []string{"very", "good", "good luck", "be very good luck"}},
		{"guillemets", "«stor» hund", []string{"stor", "stor hund"}},
		{"mixed marker sets", "<a«b»>", []string{"b", "ab", "ab"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			terms, err := ExtractTerms(tc.translation)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, terms)
		})
	}
}

func TestExtractTermsUnbalanced(t *testing.T) {
	testCases := []struct {
		name        string
		translation string
	}{
		{"stray closing", "good>"},
		{"unclosed opening", "<good"},
		{"closing before opening", "><"},
		{"one too many closings", "<a>>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			terms, err := ExtractTerms(tc.translation)
			assert.ErrorIs(t, err, ErrUnbalancedBrackets)
			assert.Nil(t, terms)
		})
	}
}

func TestWordTerms(t *testing.T) {
	w := NewWord()
	w.English = []string{"<Klingon> homeworld", "Kronos"}
	w.Swedish = []string{"<klingonsk> hemvärld"}

	en, err := w.EnglishTerms()
	require.NoError(t, err)
	assert.Equal(t, []string{"Klingon", "Klingon homeworld", "Kronos"}, en)

	sv, err := w.SwedishTerms()
	require.NoError(t, err)
	assert.Equal(t, []string{"klingonsk", "klingonsk hemvärld"}, sv)

	w.English = append(w.English, "broken>")
	_, err = w.EnglishTerms()
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)
}
