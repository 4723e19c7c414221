package system

import (
	"testing"

	"github.com/milk9111/gravitywell/prefabs"
)

func TestFormatSummary(t *testing.T) {
	cases := []struct {
		name   string
		scores Scores
		want   string
	}{
		{"empty", nil, ""},
		{"two_players", Scores{2, 5}, "Player 1 scored 2 points.\nPlayer 2 scored 5 points.\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatSummary(c.scores); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestScriptSummaryMatchesFormatter(t *testing.T) {
	s, err := LoadScriptSummarizer(prefabs.SummaryScript)
	if err != nil {
		t.Fatalf("LoadScriptSummarizer: %v", err)
	}
	for _, scores := range []Scores{{0, 0}, {3, 1}, {12, 40}} {
		got, err := s.Run(scores)
		if err != nil {
			t.Fatalf("Run(%v): %v", scores, err)
		}
		if want := FormatSummary(scores); got != want {
			t.Fatalf("script %q, formatter %q", got, want)
		}
	}
}

func TestScriptSummaryFallsBack(t *testing.T) {
	// fails only once two scores are present
	s, err := NewScriptSummarizer([]byte(`summary := string(10 / (len(scores) - 2))`))
	if err != nil {
		t.Fatalf("NewScriptSummarizer: %v", err)
	}
	var reported error
	s.OnError = func(err error) { reported = err }

	got := s.Summarize(Scores{1, 2})
	if got != FormatSummary(Scores{1, 2}) {
		t.Fatalf("expected fallback summary, got %q", got)
	}
	if reported == nil {
		t.Fatalf("expected the script failure to be reported")
	}
}

func TestScriptSummaryCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `summary := (`},
		{"missing_summary", `out := "x"`},
		{"not_a_string", `summary := len(scores)`},
		{"runtime_error", `summary := 1 + scores[5]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewScriptSummarizer([]byte(c.src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestScriptSummaryUsesScriptOutput(t *testing.T) {
	src := `
fmt := import("fmt")
summary := fmt.sprintf("%d players", len(scores))
`
	s, err := NewScriptSummarizer([]byte(src))
	if err != nil {
		t.Fatalf("NewScriptSummarizer: %v", err)
	}
	s.OnError = func(err error) { t.Fatalf("unexpected script error: %v", err) }
	if got := s.Summarize(Scores{4, 1}); got != "2 players" {
		t.Fatalf("expected script output, got %q", got)
	}
}
