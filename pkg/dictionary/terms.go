package dictionary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalancedBrackets is returned for a translation whose <> or «» markers do not pair up.
var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

func isOpening(r rune) bool { return r == '<' || r == '«' }
func isClosing(r rune) bool { return r == '>' || r == '»' }

// ExtractTerms returns the index terms of one translation.
//
// Every bracketed part yields a term as soon as its closing marker is read,
// so inner parts come before the parts that enclose them. The last term is
// the whole translation with all markers removed.
//
//	ExtractTerms("be <very> <<good> luck>") // ["very", "good", "good luck", "be very good luck"]
func ExtractTerms(translation string) ([]string, error) {
	stack := []*strings.Builder{{}}
	var terms []string

	for _, r := range translation {
		switch {
		case isOpening(r):
			stack = append(stack, &strings.Builder{})
		case isClosing(r):
			// the outermost builder is the flattened translation and is only closed at the end
			if len(stack) < 2 {
				return nil, fmt.Errorf("%q: stray closing marker: %w", translation, ErrUnbalancedBrackets)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			terms = append(terms, top.String())
		default:
			for _, b := range stack {
				b.WriteRune(r)
			}
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%q: %d unclosed markers: %w", translation, len(stack)-1, ErrUnbalancedBrackets)
	}
	return append(terms, stack[0].String()), nil
}

// extractAll concatenates the terms of every translation, duplicates included.
func extractAll(translations []string) ([]string, error) {
	var all []string
	for _, t := range translations {
		terms, err := ExtractTerms(t)
		if err != nil {
			return nil, err
		}
		all = append(all, terms...)
	}
	return all, nil
}
