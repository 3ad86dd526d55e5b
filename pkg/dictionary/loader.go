package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	startMarker = "== start-of-data =="
	endMarker   = "== end-of-data =="

	maxLineSize = 1 << 20
)

// ErrNoData is returned for a source without a start-of-data marker.
var ErrNoData = errors.New("no start-of-data marker")

// tlhPattern splits a tlh: value such as "[2] {Qong} [1.2]".
var tlhPattern = regexp.MustCompile(`(\[(?P<homonym>\d+)\]\s)?\{(?P<word>.*)\}(\s\[(?P<sense>\d+)?(\.(?P<subsense>\d+))?\])?`)

// LoadFile validates, reads and indexes a dictionary source file.
func LoadFile(path string) (*Dictionary, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	start := time.Now()
	words, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	dict, err := Build(words)
	if err != nil {
		return nil, fmt.Errorf("failed to index dictionary %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s in %v", dict.Len(), path, time.Since(start))
	return dict, nil
}

// Load reads the entries between the start-of-data and end-of-data markers.
//
// Entries are separated by blank lines and an entry without an id is dropped.
// A field line is "name:<TAB>value"; a line whose first column is empty
// continues the previous free-form field.
func Load(r io.Reader) ([]Word, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		words     []Word
		inData    bool
		word      = NewWord()
		prevField string
		lineNum   int
	)

	flush := func() {
		if word.ID != "" {
			words = append(words, word)
		}
		word = NewWord()
		prevField = ""
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if line == startMarker {
			inData = true
			continue
		}
		if line == endMarker {
			break
		}
		if !inData || strings.HasPrefix(line, "==") {
			continue
		}
		if line == "" {
			flush()
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		name, value := fields[0], fields[1]
		switch name {
		case "tlh:":
			parseTlh(&word, value, lineNum)
		case "pos:":
			word.POS = ParsePOS(value)
		case "en:":
			word.English = strings.Split(value, ", ")
		case "sv:":
			word.Swedish = strings.Split(value, ", ")
		case "tag:":
			word.Tags = strings.Split(value, "; ")
		case "data:":
			word.Data = strings.Split(value, "; ")
		case "id:":
			word.ID = value
		case "":
			// continues the last unrecognised field, even across known ones
			if _, ok := word.Fields[prevField]; !ok {
				log.Warnf("line %d: continuation without a preceding field, ignored", lineNum)
				continue
			}
			word.Fields[prevField] += line
		default:
			word.Fields[name] = value
			prevField = name
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum, err)
	}
	if !inData {
		return nil, ErrNoData
	}

	flush()
	return words, nil
}

// parseTlh fills headword and sense numbering. A value that does not match
// is logged and the defaults are kept.
func parseTlh(word *Word, value string, lineNum int) {
	m := tlhPattern.FindStringSubmatch(value)
	if m == nil {
		log.Warnf("line %d: %q is not tlh", lineNum, value)
		return
	}

	word.Headword = m[tlhPattern.SubexpIndex("word")]
	word.Homonym = groupInt(m, "homonym")
	word.Sense = groupInt(m, "sense")
	word.Subsense = groupInt(m, "subsense")
}

func groupInt(m []string, name string) int {
	s := m[tlhPattern.SubexpIndex(name)]
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}
