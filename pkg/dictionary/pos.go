package dictionary

// POS is the part-of-speech tag of a dictionary entry.
type POS int

const (
	Unknown POS = iota
	Adverbial
	Conjunction
	Exclamation
	Name
	Noun
	NounSuffix1
	NounSuffix2
	NounSuffix3
	NounSuffix4
	NounSuffix5
	Numeral
	Pronoun
	QuestionWord
	Verb
	VerbPrefix
	VerbSuffix1
	VerbSuffix2
	VerbSuffix3
	VerbSuffix4
	VerbSuffix5
	VerbSuffix6
	VerbSuffix7
	VerbSuffix8
	VerbSuffix9
	VerbSuffixRover
)

// posNames holds the spelling used in the pos: field of the source file.
var posNames = map[POS]string{
	Unknown:         "unknown",
	Adverbial:       "adverbial",
	Conjunction:     "conjunction",
	Exclamation:     "exclamation",
	Name:            "name",
	Noun:            "noun",
	NounSuffix1:     "noun suffix type 1",
	NounSuffix2:     "noun suffix type 2",
	NounSuffix3:     "noun suffix type 3",
	NounSuffix4:     "noun suffix type 4",
	NounSuffix5:     "noun suffix type 5",
	Numeral:         "numeral",
	Pronoun:         "pronoun",
	QuestionWord:    "question word",
	Verb:            "verb",
	VerbPrefix:      "verb prefix",
	VerbSuffix1:     "verb suffix type 1",
	VerbSuffix2:     "verb suffix type 2",
	VerbSuffix3:     "verb suffix type 3",
	VerbSuffix4:     "verb suffix type 4",
	VerbSuffix5:     "verb suffix type 5",
	VerbSuffix6:     "verb suffix type 6",
	VerbSuffix7:     "verb suffix type 7",
	VerbSuffix8:     "verb suffix type 8",
	VerbSuffix9:     "verb suffix type 9",
	VerbSuffixRover: "verb suffix type rover",
}

var posByName = func() map[string]POS {
	m := make(map[string]POS, len(posNames))
	for p, name := range posNames {
		m[name] = p
	}
	return m
}()

// ParsePOS maps a source name to its tag. Anything unrecognised is Unknown.
func ParsePOS(text string) POS {
	if p, ok := posByName[text]; ok {
		return p
	}
	return Unknown
}

func (p POS) String() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return posNames[Unknown]
}

// MarshalText encodes the tag by its source name.
func (p POS) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (p *POS) UnmarshalText(text []byte) error {
	*p = ParsePOS(string(text))
	return nil
}
