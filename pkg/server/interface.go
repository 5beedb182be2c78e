/*
Package server implements msgpack IPC for spell checking services.

The server package provides a minimal interface for word checking using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports check requests and runtime info queries.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Check requests use mainly this structure:

	{"id": "req_001", "w": "monkye", "l": 5}

A word found in the dictionary comes back confirmed with no suggestions:

	{"id": "req_001", "ok": true, "c": 0, "t": 3}

An unknown word gets suggestions ranked by similarity:

	{"id": "req_002", "ok": false, "s": [{"w": "monkey", "r": 1}, {"w": "money", "r": 2}], "c": 2, "t": 810}

Info queries report the loaded word counts:

	{"id": "info_001", "action": "get_info"}

Response structures include status information and error details when an op fails.

Ranked results for repeated words are served from an LRU cache, a client
rechecking the same misspelling does not rescore the dictionary.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// CheckRequest - minimal spell check request
type CheckRequest struct {
	ID     string `msgpack:"id"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Action string `msgpack:"action,omitempty"` // "get_info"
}

// CheckSuggestion - minimal suggestion response
type CheckSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CheckResponse - spell check response
type CheckResponse struct {
	ID          string            `msgpack:"id"`
	Correct     bool              `msgpack:"ok"`
	Suggestions []CheckSuggestion `msgpack:"s,omitempty"`
	Count       int               `msgpack:"c"`
	TimeTaken   int64             `msgpack:"t"`
}

// InfoResponse - runtime info response
type InfoResponse struct {
	ID          string `msgpack:"id"`
	Status      string `msgpack:"status"`
	Words       int    `msgpack:"words"`
	IgnoreWords int    `msgpack:"ignore_words"`
}

// CheckError holds basic error information for check requests
type CheckError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
