package main

import (
	"strings"
	"testing"
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"github.com/milk9111/gravitywell/prefabs"
	"github.com/milk9111/gravitywell/scene"
	"go.uber.org/zap"
)

const testFrame = 33 * time.Millisecond

func newTestHost(t *testing.T) *host {
	t.Helper()
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	summary := newSwapSummary(zap.NewNop())
	env := scene.Env{
		World:   ecs.NewWorld(),
		Catalog: catalog,
		Random:  system.NewRandom(7),
		Tuning:  system.DefaultTuning(),
		Summary: summary,
		Log:     zap.NewNop(),
	}
	h, err := newHost(env, summary)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	t.Cleanup(h.close)
	return h
}

func TestHeadlessInput(t *testing.T) {
	cases := []struct {
		mode mode.Mode
		want input.Frame
	}{
		{mode.ModeLoading, input.Frame{}},
		{mode.ModeMainMenu, input.Frame{Start: true}},
		{mode.ModePlaying, input.Frame{}},
		{mode.ModeGameOver, input.Frame{Confirm: true}},
	}
	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			if got := headlessInput(c.mode); got != c.want {
				t.Fatalf("headlessInput(%s) = %+v, want %+v", c.mode, got, c.want)
			}
		})
	}
}

func TestHostReachesPlaying(t *testing.T) {
	h := newTestHost(t)
	h.step(input.Frame{}, testFrame)
	if h.controller.Mode() != mode.ModeMainMenu {
		t.Fatalf("expected main menu after loading, got %s", h.controller.Mode())
	}
	h.step(input.Frame{Start: true}, testFrame)
	if h.controller.Mode() != mode.ModePlaying {
		t.Fatalf("expected playing, got %s", h.controller.Mode())
	}
	if n := h.world.Query(h.world.Players).Count(); n != 2 {
		t.Fatalf("expected two ships, got %d", n)
	}
}

func TestRunHeadlessStopsAndCleansUp(t *testing.T) {
	h := newTestHost(t)
	runHeadless(h, testFrame, 10, zap.NewNop())
	if !h.done() {
		t.Fatalf("headless run should end with a quit")
	}
	if h.world.Count() != 0 {
		t.Fatalf("expected every entity released, %d left", h.world.Count())
	}
}

func TestSwapSummaryRunsShippedScript(t *testing.T) {
	s := newSwapSummary(zap.NewNop())
	if _, ok := s.current.(*system.ScriptSummarizer); !ok {
		t.Fatalf("expected the shipped summary script to load, got %T", s.current)
	}
	scores := system.Scores{3, 0}
	got := s.Summarize(scores)
	if got != system.FormatSummary(scores) {
		t.Fatalf("summary mismatch:\n%q\n%q", got, system.FormatSummary(scores))
	}
	if !strings.Contains(got, "Player 1 scored 3 points.") {
		t.Fatalf("unexpected summary %q", got)
	}
}
