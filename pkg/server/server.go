package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spelchk/spelchk/pkg/config"
	"github.com/spelchk/spelchk/pkg/dictionary"
	"github.com/spelchk/spelchk/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

// defaultLimit caps suggestion counts when a request leaves the limit
// unset.
const defaultLimit = 5

// Server handles the IPC for spell checks
type Server struct {
	words     dictionary.Set
	ignore    dictionary.Set
	suggester suggest.Suggester
	cache     *suggest.ResultCache
	cfg       config.ServerConfig
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
}

// NewServer creates a new check server using stdin/stdout for IPC
func NewServer(words, ignore dictionary.Set, suggester suggest.Suggester, cfg config.ServerConfig) *Server {
	return newServerWithIO(words, ignore, suggester, cfg, os.Stdin, os.Stdout)
}

func newServerWithIO(words, ignore dictionary.Set, suggester suggest.Suggester, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	cacheSize := cfg.CacheSize
	if cacheSize < 1 {
		cacheSize = 1
	}
	return &Server{
		words:     words,
		ignore:    ignore,
		suggester: suggester,
		cache:     suggest.NewResultCache(cacheSize),
		cfg:       cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil once the
// client closes its end of the pipe.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	for {
		var request CheckRequest
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError(request.ID, "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the optional action field
func (s *Server) handleRequest(request CheckRequest) {
	switch request.Action {
	case "":
		s.handleCheck(request)
	case "get_info":
		s.handleInfo(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleCheck processes a spell check request. Known words come back
// confirmed without suggestions, unknown words get the ranked top
// candidates with 1-based ranks.
func (s *Server) handleCheck(request CheckRequest) {
	word := request.Word

	if word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request")
		return
	}
	if len(word) > s.cfg.MaxWordLen {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", s.cfg.MaxWordLen), 400)
		log.Debug("Word is too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	start := time.Now()

	if s.words.Has(word) || s.ignore.Has(word) {
		s.sendResponse(CheckResponse{
			ID:        request.ID,
			Correct:   true,
			TimeTaken: time.Since(start).Microseconds(),
		})
		return
	}

	candidates, ok := s.cache.Get(word)
	if !ok {
		var err error
		candidates, err = s.suggester.Top(word, s.cfg.MaxLimit)
		if err != nil {
			s.sendError(request.ID, err.Error(), 500)
			log.Errorf("Ranking %q: %v", word, err)
			return
		}
		s.cache.Put(word, candidates)
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]CheckSuggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = CheckSuggestion{Word: c.Word, Rank: uint16(i + 1)}
	}

	s.sendResponse(CheckResponse{
		ID:          request.ID,
		Correct:     false,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

// handleInfo reports loaded word counts
func (s *Server) handleInfo(request CheckRequest) {
	s.sendResponse(InfoResponse{
		ID:          request.ID,
		Status:      "ok",
		Words:       s.words.Len(),
		IgnoreWords: s.ignore.Len(),
	})
}

// sendResponse encodes the given response as msgpack onto the wire
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CheckError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
