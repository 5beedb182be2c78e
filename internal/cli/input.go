// Package cli handles the interactive prompt for checking words and testing lookups
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spelchk/spelchk/pkg/dictionary"
	"github.com/spelchk/spelchk/pkg/suggest"
	"github.com/spelchk/spelchk/pkg/tokenizer"
)

// InputHandler processes user input from stdin. Plain words are spell
// checked against the dictionary, a "/p " prefix lists completions
// from the prefix index instead.
type InputHandler struct {
	words      dictionary.Set
	ignore     dictionary.Set
	suggester  suggest.Suggester
	index      *suggest.PrefixIndex
	cfg        tokenizer.Config
	limit      int
	maxWordLen int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(words, ignore dictionary.Set, suggester suggest.Suggester, index *suggest.PrefixIndex, cfg tokenizer.Config, limit, maxWordLen int) *InputHandler {
	return &InputHandler{
		words:      words,
		ignore:     ignore,
		suggester:  suggester,
		index:      index,
		cfg:        cfg,
		limit:      limit,
		maxWordLen: maxWordLen,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("spelchk interactive mode")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it, or '/p <prefix>' for completions (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput dispatches a single line, either a prefix query or words to check
func (h *InputHandler) handleInput(line string) {
	if strings.HasPrefix(line, "/p ") {
		h.handlePrefix(strings.TrimSpace(strings.TrimPrefix(line, "/p ")))
		return
	}

	tokens := tokenizer.Tokenize(line, h.cfg)
	if len(tokens) == 0 {
		log.Warnf("Nothing to check in: '%s'", line)
		return
	}
	for _, word := range tokens {
		if word == "" {
			continue
		}
		h.checkWord(word)
	}
}

// checkWord reports a word as ok or prints ranked corrections for it
func (h *InputHandler) checkWord(word string) {
	if len(word) > h.maxWordLen {
		log.Errorf("Word too long: %s", word)
		return
	}

	if h.words.Has(word) || h.ignore.Has(word) {
		log.Printf("'%s' ok", word)
		return
	}

	start := time.Now()
	ranked, err := h.suggester.Top(word, h.limit)
	elapsed := time.Since(start)
	if err != nil {
		log.Errorf("Ranking failed for '%s': %v", word, err)
		return
	}
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	if len(ranked) == 0 {
		log.Warnf("No suggestions found for: '%s'", word)
		return
	}

	log.Printf("'%s' not found, %d suggestions:", word, len(ranked))
	for i, c := range ranked {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Word)
		log.Printf("%2d. %-40s (ratio: %.3f)", i+1, clWord, c.Ratio)
	}
}

// handlePrefix lists dictionary words starting with the given prefix
func (h *InputHandler) handlePrefix(prefix string) {
	if prefix == "" {
		log.Errorf("Usage: /p <prefix>")
		return
	}

	start := time.Now()
	matches := h.index.Complete(prefix, h.limit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(matches) == 0 {
		log.Warnf("No words start with '%s'", prefix)
		return
	}

	log.Printf("Found %d words starting with '%s':", len(matches), prefix)
	for i, w := range matches {
		log.Printf("%2d. %s", i+1, w)
	}
}
