// Package tokenizer extracts candidate words from lines of text.
//
// The scanner is a small two-state machine, either inside a candidate
// token or between tokens. ASCII letters are accumulated lowercased,
// hyphens and apostrophes are kept verbatim, and every other rune ends
// the current token. A token only counts if it contains at least one
// letter, so stray punctuation runs and bare numbers never surface.
// Surviving tokens get possessive suffixes stripped before they are
// handed to membership checks.
package tokenizer

import "strings"

// Config controls which runes may appear inside a token.
type Config struct {
	// Digits lets ASCII digits join tokens, so "utf8" scans as one
	// word. When false a digit is a boundary like any other rune.
	Digits bool
}

// DefaultConfig returns the stock tokenizer settings.
func DefaultConfig() Config {
	return Config{Digits: true}
}

// Scanner walks a single line and yields one token per Scan call.
type Scanner struct {
	runes []rune
	cfg   Config
	pos   int
	token string
}

// NewScanner returns a Scanner over line.
func NewScanner(line string, cfg Config) *Scanner {
	return &Scanner{runes: []rune(line), cfg: cfg}
}

// Reset points the Scanner at a new line, reusing its configuration.
func (s *Scanner) Reset(line string) {
	s.runes = []rune(line)
	s.pos = 0
	s.token = ""
}

// Scan advances to the next valid token. It returns false once the
// line is exhausted.
func (s *Scanner) Scan() bool {
	var buf []rune
	for s.pos < len(s.runes) {
		r := s.runes[s.pos]
		s.pos++
		if s.tokenRune(r) {
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
			buf = append(buf, r)
			continue
		}
		if hasLetter(buf) {
			s.token = StripPossessive(string(buf))
			return true
		}
		buf = buf[:0]
	}
	// End of line flushes like any other boundary.
	if hasLetter(buf) {
		s.token = StripPossessive(string(buf))
		return true
	}
	return false
}

// Token returns the token found by the last successful Scan. Stripping
// can leave it empty, a lone possessive marker still counts as a hit.
func (s *Scanner) Token() string {
	return s.token
}

func (s *Scanner) tokenRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case r == '-' || r == '\'':
		return true
	case s.cfg.Digits && '0' <= r && r <= '9':
		return true
	}
	return false
}

// hasLetter reports whether the buffer holds at least one letter.
// The buffer is already lowercased at this point.
func hasLetter(buf []rune) bool {
	for _, r := range buf {
		if 'a' <= r && r <= 'z' {
			return true
		}
	}
	return false
}

// StripPossessive removes a trailing "'s", or failing that a trailing
// apostrophe. Exactly one rule applies and the result is not
// re-examined, "players'" becomes "players", not "player".
func StripPossessive(token string) string {
	if strings.HasSuffix(token, "'s") {
		return token[:len(token)-2]
	}
	if strings.HasSuffix(token, "'") {
		return token[:len(token)-1]
	}
	return token
}

// Tokenize returns every valid token in line, in order.
func Tokenize(line string, cfg Config) []string {
	var tokens []string
	s := NewScanner(line, cfg)
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	return tokens
}
