package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gravitywell/prefabs"
)

// Summarizer composes the game-over message from the final scores.
type Summarizer interface {
	Summarize(scores Scores) string
}

// SummaryFunc adapts a function to Summarizer.
type SummaryFunc func(scores Scores) string

func (f SummaryFunc) Summarize(scores Scores) string {
	return f(scores)
}

// FormatSummary writes one "Player N scored S points." line per score slot.
func FormatSummary(scores Scores) string {
	var b strings.Builder
	for id, score := range scores {
		fmt.Fprintf(&b, "Player %d scored %d points.\n", id+1, score)
	}
	return b.String()
}

// ScriptSummarizer runs a tengo script that reads the global `scores` array
// and leaves its message in the global `summary`.
type ScriptSummarizer struct {
	compiled *tengo.Compiled
	// OnError is told about script failures before the Go formatter is used.
	OnError func(err error)
}

func NewScriptSummarizer(src []byte) (*ScriptSummarizer, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "text"))
	if err := script.Add("scores", []interface{}{}); err != nil {
		return nil, fmt.Errorf("summary: add scores: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("summary: compile: %w", err)
	}
	s := &ScriptSummarizer{compiled: compiled}
	// globals only hold values after a run, so try one with no scores
	if _, err := s.Run(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScriptSummarizer compiles a script from the prefab scripts directory.
func LoadScriptSummarizer(name string) (*ScriptSummarizer, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("summary: load %s: %w", name, err)
	}
	return NewScriptSummarizer(src)
}

// Run executes the script once against scores.
func (s *ScriptSummarizer) Run(scores Scores) (string, error) {
	c := s.compiled.Clone()
	values := make([]interface{}, len(scores))
	for i, v := range scores {
		values[i] = v
	}
	if err := c.Set("scores", values); err != nil {
		return "", fmt.Errorf("summary: set scores: %w", err)
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("summary: run: %w", err)
	}
	out := c.Get("summary")
	if out.ValueType() != "string" {
		return "", fmt.Errorf("summary: expected string, got %s", out.ValueType())
	}
	return out.String(), nil
}

// Summarize falls back to FormatSummary when the script fails.
func (s *ScriptSummarizer) Summarize(scores Scores) string {
	out, err := s.Run(scores)
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
		return FormatSummary(scores)
	}
	return out
}
