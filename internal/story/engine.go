// Package story implements the token substitution engine that turns a
// template into a finished story.
package story

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/storyforge/madlib/pkg/types"
)

// DefaultPlaceholder is emitted for tokens whose type has no words in the
// dictionary. A missing type is a designed fallback, not an error.
const DefaultPlaceholder = "XXX"

// tokenPattern matches one bracketed token. Non-greedy, so each match ends
// at the first closing bracket.
var tokenPattern = regexp.MustCompile(`\[(.*?)\]`)

// maxLineSize bounds a single template line (1 MiB).
const maxLineSize = 1 << 20

// Options configures an Engine.
type Options struct {
	// Seed for the random source. Zero means seed from the current time;
	// tests inject a fixed seed for deterministic output.
	Seed int64

	// Placeholder overrides DefaultPlaceholder when non-empty.
	Placeholder string
}

// Engine replaces bracketed type tokens with random dictionary words.
// It owns a single seeded random source; each replacement draws from it
// independently.
type Engine struct {
	dict        types.Dictionary
	rng         *rand.Rand
	placeholder string
}

// NewEngine creates an Engine over dict. The Dictionary is not copied;
// callers must not modify it while the Engine is in use.
func NewEngine(dict types.Dictionary, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Engine{
		dict:        dict,
		rng:         rand.New(rand.NewSource(seed)),
		placeholder: placeholder,
	}
}

// Stats summarizes one generation run.
type Stats struct {
	Lines   int `json:"lines"`   // lines written
	Tokens  int `json:"tokens"`  // tokens replaced, placeholders included
	Missing int `json:"missing"` // tokens that fell back to the placeholder
}

// FillLine replaces every bracketed token in line. The text between the
// brackets is used verbatim as the type key. Lines without tokens come
// back unchanged.
func (e *Engine) FillLine(line string) string {
	filled, _, _ := e.fill(line)
	return filled
}

// fill replaces tokens in line and reports how many tokens were seen and
// how many fell back to the placeholder.
func (e *Engine) fill(line string) (string, int, int) {
	tokens, missing := 0, 0
	filled := tokenPattern.ReplaceAllStringFunc(line, func(match string) string {
		tokens++
		typ := match[1 : len(match)-1]
		words := e.dict.Words(typ)
		if len(words) == 0 {
			missing++
			return e.placeholder
		}
		return words[e.rng.Intn(len(words))]
	})
	return filled, tokens, missing
}

// Run streams the template from r, fills every line, and writes the story
// to w. Each input line produces exactly one output line terminated by a
// newline; a trailing carriage return from CRLF input is dropped.
func (e *Engine) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	out := bufio.NewWriter(w)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		filled, tokens, missing := e.fill(line)
		if _, err := out.WriteString(filled); err != nil {
			return stats, fmt.Errorf("writing story line: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("writing story line: %w", err)
		}

		stats.Lines++
		stats.Tokens += tokens
		stats.Missing += missing
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading template: %w", err)
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("flushing story: %w", err)
	}
	return stats, nil
}
