package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// minSourceSize is the length of the start marker plus a newline.
const minSourceSize = int64(len(startMarker) + 1)

// knownExtensions are the names zrajm dictionaries are usually shipped under.
var knownExtensions = []string{".zdb", ".txt"}

// ValidateFile checks that path is a readable, non-trivial dictionary source
// containing the start-of-data marker.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dictionary %s is a directory", path)
	}
	if info.Size() < minSourceSize {
		return fmt.Errorf("dictionary %s is too small (%d bytes, minimum: %d bytes)", path, info.Size(), minSourceSize)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, known := range knownExtensions {
		if ext == known {
			validExt = true
			break
		}
	}
	if !validExt {
		log.Warnf("Dictionary %s has unexpected extension %q (expected one of %v)", path, ext, knownExtensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if scanner.Text() == startMarker {
			log.Debugf("Dictionary %s validated", path)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return fmt.Errorf("dictionary %s: %w", path, ErrNoData)
}
