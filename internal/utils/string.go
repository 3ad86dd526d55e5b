package utils

import (
	"unicode"
)

// IsSeparator checks if a rune joins morphemes or marks a glottal stop.
// The apostrophe is a letter of the Klingon alphabet.
func IsSeparator(r rune) bool {
	return r == '\'' || r == '-' || r == '’'
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsSpecialChars checks if a string contains characters that
// cannot appear in a Klingon word.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if input should be processed for completions
// Returns false for strings that contain digits, whitespace or symbols, or are repetitive
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if ContainsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of one character repeated 4+ times.
func IsRepetitive(s string) bool {
	runes := []rune(s)
	if len(runes) <= 3 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
