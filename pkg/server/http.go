package server

import (
	"embed"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/katik/internal/logger"
	"github.com/bastiangx/katik/internal/utils"
	"github.com/bastiangx/katik/pkg/config"
	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var static embed.FS

// HTTPServer serves completions as JSON.
type HTTPServer struct {
	completer suggest.ICompleter
	config    *config.Config
	logger    *log.Logger
	engine    *gin.Engine
}

// NewHTTPServer builds the router. Call gin.SetMode before it to silence
// gin's own route logging.
func NewHTTPServer(completer suggest.ICompleter, cfg *config.Config) *HTTPServer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	h := &HTTPServer{
		completer: completer,
		config:    cfg,
		logger:    logger.New("http"),
		engine:    gin.New(),
	}
	h.engine.Use(gin.Recovery(), h.requestLogger())
	h.engine.GET("/", h.index)
	h.engine.GET("/complete/:word", h.complete)
	h.engine.GET("/translate/:lang/:term", h.translate)
	h.engine.GET("/word/:id", h.word)
	h.engine.GET("/health", h.health)
	h.engine.GET("/stats", h.stats)
	return h
}

// Handler exposes the router, mainly for tests.
func (h *HTTPServer) Handler() http.Handler {
	return h.engine
}

// Run listens on addr until the process exits.
func (h *HTTPServer) Run(addr string) error {
	h.logger.Infof("Listening on %s", addr)
	return h.engine.Run(addr)
}

func (h *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start))
	}
}

func (h *HTTPServer) index(c *gin.Context) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusInternalServerError, CompletionError{Error: "index page missing", Code: http.StatusInternalServerError})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *HTTPServer) complete(c *gin.Context) {
	word := c.Param("word")
	length := utf8.RuneCountInString(word)
	if length < h.config.Server.MinPrefix || length > h.config.Server.MaxPrefix {
		c.JSON(http.StatusBadRequest, CompletionError{
			Error: fmt.Sprintf("word length must be between %d and %d characters", h.config.Server.MinPrefix, h.config.Server.MaxPrefix),
			Code:  http.StatusBadRequest,
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, CompletionError{Error: "limit must be a number", Code: http.StatusBadRequest})
			return
		}
		limit = n
	}
	limit = utils.ClampLimit(limit, h.config.CLI.DefaultLimit, h.config.Server.MaxLimit)

	if h.config.Server.EnableFilter && !utils.IsValidInput(word) {
		c.JSON(http.StatusOK, CompletionResponse{Input: word, Suggestions: []CompletionSuggestion{}, Parsed: []ParsedAlternative{}})
		return
	}

	start := time.Now()
	resp := BuildResponse(h.completer.Complete(word, limit))
	resp.TimeTaken = time.Since(start).Microseconds()
	c.JSON(http.StatusOK, resp)
}

// translate finds the entries indexed under an English or Swedish term.
func (h *HTTPServer) translate(c *gin.Context) {
	dict := h.completer.Dictionary()
	term := c.Param("term")

	var found []*dictionary.Word
	switch c.Param("lang") {
	case "en":
		found = dict.English(term)
	case "sv":
		found = dict.Swedish(term)
	default:
		c.JSON(http.StatusNotFound, CompletionError{Error: "unknown language: " + c.Param("lang"), Code: http.StatusNotFound})
		return
	}
	if found == nil {
		found = []*dictionary.Word{}
	}
	c.JSON(http.StatusOK, gin.H{"term": term, "words": found})
}

func (h *HTTPServer) word(c *gin.Context) {
	w, ok := h.completer.Dictionary().ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, CompletionError{Error: "no such entry", Code: http.StatusNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": w, "homonyms": h.completer.Dictionary().Lookup(w.Headword)})
}

func (h *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Words: h.completer.Stats()["totalWords"]})
}

func (h *HTTPServer) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.completer.Stats())
}
