/*
Package server exposes the completer over msgpack IPC and HTTP.

# IPC

Clients write msgpack maps to stdin, back to back, and read one msgpack map
per request from stdout. Every request carries an id that is echoed in the
response. Logs go to stderr.

A completion request names the partially typed word and an optional limit:

	{"id": "req_001", "p": "Qo'noS", "l": 24}

The response lists the ranked suggestions, the parsed interpretations of the
input and the time taken in microseconds:

	{"id": "req_001", "s": [{"w": "-Daq", "r": 1, "pos": "noun suffix type 5", "id": "..."}],
	 "parsed": [{"tracks": ["name"], "m": ["Qo'noS"]}], "c": 1, "t": 145}

The "stats" and "health" actions report on the loaded dictionary:

	{"id": "s1", "action": "stats"}
	{"id": "h1", "action": "health"}

The "config" action changes the server limits and saves them to the config
file. Omitted keys keep their value; the reply carries the limits in effect:

	{"id": "c1", "action": "config", "max_limit": 32, "enable_filter": false}

Failures are reported as {"id", "e", "c"} with an HTTP-like status code.

# HTTP

HTTPServer serves the same completions as JSON under /complete/:word, a
health probe under /health and a small search page under /.
*/
package server

// Request is any message read from the IPC stream.
// An empty action means "complete".
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`

	// server limits, "config" action only
	MaxLimit     *int  `msgpack:"max_limit,omitempty"`
	MinPrefix    *int  `msgpack:"min_prefix,omitempty"`
	MaxPrefix    *int  `msgpack:"max_prefix,omitempty"`
	EnableFilter *bool `msgpack:"enable_filter,omitempty"`
}

// CompletionSuggestion is one suggested dictionary entry.
type CompletionSuggestion struct {
	Word    string   `msgpack:"w" json:"w"`
	Rank    uint16   `msgpack:"r" json:"r"`
	POS     string   `msgpack:"pos" json:"pos"`
	ID      string   `msgpack:"id" json:"id"`
	English []string `msgpack:"en,omitempty" json:"en,omitempty"`
}

// ParsedAlternative is one interpretation of the input: the headwords of the
// matched morphemes and the tracks that produced them.
type ParsedAlternative struct {
	Tracks    []string `msgpack:"tracks" json:"tracks"`
	Morphemes []string `msgpack:"m" json:"m"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id" json:"id,omitempty"`
	Input       string                 `msgpack:"i" json:"input"`
	Suggestions []CompletionSuggestion `msgpack:"s" json:"suggestions"`
	Parsed      []ParsedAlternative    `msgpack:"parsed" json:"parsed"`
	Count       int                    `msgpack:"c" json:"count"`
	TimeTaken   int64                  `msgpack:"t" json:"time_us"`
}

// StatsResponse reports dictionary and cache statistics.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// HealthResponse - liveness probe response
type HealthResponse struct {
	ID     string `msgpack:"id" json:"id,omitempty"`
	Status string `msgpack:"status" json:"status"`
	Words  int    `msgpack:"words" json:"words"`
}

// ConfigResponse reports the server limits in effect after a "config" action.
type ConfigResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	MaxLimit     int    `msgpack:"max_limit"`
	MinPrefix    int    `msgpack:"min_prefix"`
	MaxPrefix    int    `msgpack:"max_prefix"`
	EnableFilter bool   `msgpack:"enable_filter"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id" json:"id,omitempty"`
	Error string `msgpack:"e" json:"error"`
	Code  int    `msgpack:"c" json:"code"`
}
