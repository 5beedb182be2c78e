// Package ignore assembles the set of words spelchk never reports,
// merged from a comma-separated command line list and a flat file of
// one word per line.
package ignore

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spelchk/spelchk/internal/utils"
	"github.com/spelchk/spelchk/pkg/dictionary"
)

// ParseList splits a comma-separated ignore list. Entries are trimmed
// of surrounding whitespace and empty entries are dropped, so trailing
// commas and double commas are harmless.
func ParseList(s string) []string {
	var words []string
	for _, part := range strings.Split(s, ",") {
		word := strings.TrimSpace(part)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// ReadFile loads an ignore file, one word per line. A missing file is
// not an error, most users never create one. Any other read failure
// is warned about and treated as an empty list.
func ReadFile(path string) []string {
	path = utils.ExpandPath(path)

	if !utils.FileExists(path) {
		log.Debugf("Ignore file %s does not exist", path)
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Failed to read ignore file %s: %v", path, err)
		return nil
	}

	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		log.Debugf("Adding '%s' to the ignore list", word)
		words = append(words, word)
	}
	return words
}

// Build merges the command line list and the ignore file into one set.
func Build(list, path string) dictionary.Set {
	words := ParseList(list)
	if path != "" {
		words = append(words, ReadFile(path)...)
	}
	return dictionary.NewSet(words)
}
