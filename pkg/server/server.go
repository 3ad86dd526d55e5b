package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/katik/internal/logger"
	"github.com/bastiangx/katik/internal/utils"
	"github.com/bastiangx/katik/pkg/config"
	"github.com/bastiangx/katik/pkg/morpho"
	"github.com/bastiangx/katik/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for completions
type Server struct {
	completer  suggest.ICompleter
	config     *config.Config
	configPath string
	logger     *log.Logger

	dec *msgpack.Decoder
	out *bufio.Writer
	enc *msgpack.Encoder
	mu  sync.Mutex

	requestCount int
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server reading requests from r and
// writing responses to w.
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		completer: completer,
		config:    cfg,
		logger:    logger.New("ipc"),
		dec:       msgpack.NewDecoder(bufio.NewReader(r)),
		out:       out,
		enc:       msgpack.NewEncoder(out),
	}
}

// SetConfigPath names the file "config" requests save to. Without one the
// action is refused.
func (s *Server) SetConfigPath(path string) {
	s.configPath = path
}

// Start processes requests until the input stream ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting IPC server")
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			// the stream cannot be resynchronised after a malformed message
			s.sendError("", "malformed request", http.StatusBadRequest)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", "complete":
		s.handleComplete(req)
	case "stats":
		s.send(StatsResponse{ID: req.ID, Stats: s.completer.Stats()})
	case "health":
		s.send(HealthResponse{ID: req.ID, Status: "ok", Words: s.completer.Stats()["totalWords"]})
	case "config":
		s.handleConfig(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), http.StatusBadRequest)
	}
}

func (s *Server) handleComplete(req Request) {
	if req.Prefix == "" {
		s.sendError(req.ID, "missing prefix", http.StatusBadRequest)
		return
	}
	length := utf8.RuneCountInString(req.Prefix)
	if length < s.config.Server.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", s.config.Server.MinPrefix), http.StatusBadRequest)
		return
	}
	if length > s.config.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.config.Server.MaxPrefix), http.StatusBadRequest)
		return
	}

	resp := CompletionResponse{ID: req.ID, Input: req.Prefix}
	if s.config.Server.EnableFilter && !utils.IsValidInput(req.Prefix) {
		s.logger.Debugf("Filtered input %q", req.Prefix)
		s.send(resp)
		return
	}

	limit := utils.ClampLimit(req.Limit, s.config.CLI.DefaultLimit, s.config.Server.MaxLimit)
	start := time.Now()
	result := s.completer.Complete(req.Prefix, limit)
	resp = BuildResponse(result)
	resp.ID = req.ID
	resp.TimeTaken = time.Since(start).Microseconds()
	s.send(resp)
}

func (s *Server) handleConfig(req Request) {
	if s.configPath == "" {
		s.sendError(req.ID, "no config file to update", http.StatusConflict)
		return
	}
	err := s.config.Update(s.configPath, req.MaxLimit, req.MinPrefix, req.MaxPrefix, req.EnableFilter)
	if errors.Is(err, config.ErrInvalidLimits) {
		s.sendError(req.ID, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.logger.Errorf("Saving config: %v", err)
		s.sendError(req.ID, "failed to save config", http.StatusInternalServerError)
		return
	}

	srv := s.config.Server
	s.logger.Infof("Server limits updated: max_limit=%d min_prefix=%d max_prefix=%d filter=%t",
		srv.MaxLimit, srv.MinPrefix, srv.MaxPrefix, srv.EnableFilter)
	s.send(ConfigResponse{
		ID:           req.ID,
		Status:       "ok",
		MaxLimit:     srv.MaxLimit,
		MinPrefix:    srv.MinPrefix,
		MaxPrefix:    srv.MaxPrefix,
		EnableFilter: srv.EnableFilter,
	})
}

// BuildResponse converts completions into their wire form.
func BuildResponse(c morpho.Completions) CompletionResponse {
	ranks := utils.CreateRankList(len(c.Suggestions))
	suggestions := make([]CompletionSuggestion, len(c.Suggestions))
	for i, w := range c.Suggestions {
		suggestions[i] = CompletionSuggestion{
			Word:    w.Headword,
			Rank:    ranks[i],
			POS:     w.POS.String(),
			ID:      w.ID,
			English: w.English,
		}
	}

	parsed := make([]ParsedAlternative, len(c.Parsed))
	for i, alt := range c.Parsed {
		morphemes := make([]string, 0, len(alt.Slots))
		for _, g := range alt.Slots {
			if len(g) > 0 {
				morphemes = append(morphemes, g[0].Headword)
			}
		}
		parsed[i] = ParsedAlternative{Tracks: alt.Tracks, Morphemes: morphemes}
	}

	return CompletionResponse{
		Input:       c.Input,
		Suggestions: suggestions,
		Parsed:      parsed,
		Count:       len(suggestions),
	}
}

func (s *Server) send(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(v); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.logger.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.logger.Debugf("Request %q failed: %s", id, message)
	s.send(CompletionError{ID: id, Error: message, Code: code})
}
