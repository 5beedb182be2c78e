// Package checker scans text for tokens that appear in neither the
// dictionary nor the ignore set.
package checker

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spelchk/spelchk/pkg/dictionary"
	"github.com/spelchk/spelchk/pkg/tokenizer"
)

// maxLineBytes bounds a single input line. Minified or generated
// files can carry lines well past bufio's default.
const maxLineBytes = 1024 * 1024

// Finding locates one unknown token in its source.
type Finding struct {
	Source string
	Line   int
	Token  string
}

// String renders a finding the way the CLI prints it.
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d %q", f.Source, f.Line, f.Token)
}

// Checker runs membership checks over lines, readers and files.
type Checker struct {
	words  dictionary.Set
	ignore dictionary.Set
	cfg    tokenizer.Config
}

// New returns a Checker against the given word and ignore sets.
func New(words, ignore dictionary.Set, cfg tokenizer.Config) *Checker {
	return &Checker{words: words, ignore: ignore, cfg: cfg}
}

func (c *Checker) known(token string) bool {
	return c.words.Has(token) || c.ignore.Has(token)
}

// CheckLine returns a Finding for every unknown token in line, in
// order of appearance. n is the line number recorded in the findings.
func (c *Checker) CheckLine(source string, n int, line string) []Finding {
	var findings []Finding
	s := tokenizer.NewScanner(line, c.cfg)
	for s.Scan() {
		token := s.Token()
		if c.known(token) {
			continue
		}
		findings = append(findings, Finding{Source: source, Line: n, Token: token})
	}
	return findings
}

// CheckReader scans r line by line. Line numbers start at 1 and every
// line counts, blank or not. Bytes that are not valid UTF-8 are
// replaced rather than skipped, so no line can drop out of the count.
func (c *Checker) CheckReader(source string, r io.Reader) ([]Finding, error) {
	var findings []Finding

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for scanner.Scan() {
		n++
		line := strings.ToValidUTF8(scanner.Text(), "�")
		findings = append(findings, c.CheckLine(source, n, line)...)
	}
	if err := scanner.Err(); err != nil {
		return findings, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return findings, nil
}

// CheckFiles checks each path in turn and writes findings to out, one
// per line. A file that cannot be opened or read is warned about and
// skipped, a bad path never aborts the run.
func (c *Checker) CheckFiles(paths []string, out io.Writer) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			log.Warnf("Failed to open %s: %v", path, err)
			continue
		}
		findings, err := c.CheckReader(path, f)
		f.Close()
		if err != nil {
			log.Warnf("%v", err)
		}
		for _, finding := range findings {
			fmt.Fprintln(out, finding)
		}
	}
}

// ExpandPaths turns a mixed list of files and directories into plain
// files. Directories are walked in lexical order when recursive is
// set and warned about otherwise. Paths that cannot be inspected are
// passed through so the open in CheckFiles reports them.
func ExpandPaths(paths []string, recursive bool) []string {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			files = append(files, path)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		if !recursive {
			log.Warnf("%s is a directory, skipping (use -r to descend)", path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warnf("Failed to walk %s: %v", p, err)
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			log.Warnf("Failed to walk %s: %v", path, err)
		}
	}
	return files
}
