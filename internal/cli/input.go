// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/katik/internal/logger"
	"github.com/bastiangx/katik/internal/utils"
	"github.com/bastiangx/katik/pkg/morpho"
	"github.com/bastiangx/katik/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	posStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	parseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
)

// InputHandler reads words from the terminal and prints how they parse and
// what could complete them. It accepts flags controlling the prefix length
// bounds, the suggestion limit and input filtering.
type InputHandler struct {
	completer       suggest.ICompleter
	logger          *log.Logger
	in              io.Reader
	out             io.Writer
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		logger:          logger.Default("cli"),
		in:              os.Stdin,
		out:             os.Stdout,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// Start begins the interface loop.
// It prompts for input and hands each trimmed line to handleInput until
// the input ends.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "katik CLI")
	fmt.Fprintln(h.out, "type a word and press Enter to see completions (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		prefix := strings.TrimSpace(scanner.Text())
		if prefix == "" {
			continue
		}
		h.handleInput(prefix)
	}
}

func (h *InputHandler) handleInput(prefix string) {
	length := utf8.RuneCountInString(prefix)
	if length < h.minPrefixLength {
		h.logger.Errorf("Prefix too short: %s", prefix)
		return
	}
	if length > h.maxPrefixLength {
		h.logger.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.logger.Infof("No results found for prefix: '%s'", prefix)
		return
	}

	start := time.Now()
	result := h.completer.Complete(prefix, h.suggestLimit)
	h.logger.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(result.Parsed) == 0 && len(result.Suggestions) == 0 {
		h.logger.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	fmt.Fprint(h.out, Render(result))
}

// Render formats completions for the terminal: one line per interpretation
// followed by the numbered suggestions.
func Render(c morpho.Completions) string {
	var b strings.Builder
	for _, alt := range c.Parsed {
		parts := make([]string, 0, len(alt.Slots))
		for _, g := range alt.Slots {
			if len(g) > 0 {
				parts = append(parts, g[0].Headword)
			}
		}
		fmt.Fprintf(&b, "%s %s\n",
			parseStyle.Render(strings.Join(parts, " + ")),
			posStyle.Render("("+strings.Join(alt.Tracks, ", ")+")"))
	}
	for i, w := range c.Suggestions {
		gloss := strings.Join(w.English, "; ")
		fmt.Fprintf(&b, "%2d. %s %s %s\n", i+1,
			wordStyle.Render(w.Headword), posStyle.Render(w.POS.String()), gloss)
	}
	return b.String()
}
