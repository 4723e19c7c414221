package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"go.uber.org/zap"
)

func TestComputeFrameStats(t *testing.T) {
	got := ComputeFrameStats([]float64{40, 10, 30, 20})
	if math.Abs(got.Mean-25) > 1e-9 {
		t.Fatalf("mean = %v, want 25", got.Mean)
	}
	if got.P50 != 20 {
		t.Fatalf("p50 = %v, want 20", got.P50)
	}
	if got.P95 != 40 || got.Max != 40 {
		t.Fatalf("p95/max = %v/%v, want 40/40", got.P95, got.Max)
	}
	if (ComputeFrameStats(nil) != FrameStats{}) {
		t.Fatalf("empty samples should give zero stats")
	}
}

func TestNilOutputDiscards(t *testing.T) {
	out, err := NewOutput("")
	if err != nil || out != nil {
		t.Fatalf("empty dir should disable output, got %v %v", out, err)
	}
	if err := out.Write(SessionRecord{}); err != nil {
		t.Fatalf("nil write: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func playSession(r *Recorder, frames int, scores system.Scores) {
	r.SessionStarted()
	for i := 0; i < frames; i++ {
		r.Event(ecs.Event{Kind: ecs.EventBounce})
		r.Tick(16 * time.Millisecond)
	}
	r.Event(ecs.Event{Kind: ecs.EventSalvageCollected})
	r.SessionEnded("done", scores)
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stats")
	out, err := NewOutput(dir)
	if err != nil {
		t.Fatalf("NewOutput: %v", err)
	}
	r := NewRecorder(out, zap.NewNop())
	playSession(r, 3, system.Scores{2, 1})
	playSession(r, 2, system.Scores{0, 4})
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SessionsFile))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "session,ticks,") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "session,ticks,") != 1 {
		t.Fatalf("header written more than once:\n%s", data)
	}
	if !strings.HasPrefix(lines[2], "2,2,") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder(nil, nil)
	playSession(r, 4, system.Scores{3, 1})
	got := r.Last()
	if got.Session != 1 || got.Ticks != 4 {
		t.Fatalf("unexpected session/ticks %+v", got)
	}
	if got.Bounces != 4 || got.SalvageCollected != 1 || got.Absorbed != 0 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if math.Abs(got.DurationMS-64) > 1e-9 || math.Abs(got.MeanFrameMS-16) > 1e-9 {
		t.Fatalf("unexpected timing %+v", got)
	}
	if got.TotalScore != 4 || got.Scores != "3;1" {
		t.Fatalf("unexpected scores %+v", got)
	}
}

func TestRecorderIgnoresTicksOutsideSession(t *testing.T) {
	r := NewRecorder(nil, nil)
	r.Tick(time.Second)
	r.Event(ecs.Event{Kind: ecs.EventAbsorbed})
	r.SessionEnded("", nil)
	if (r.Last() != SessionRecord{}) {
		t.Fatalf("nothing should be recorded before a session starts: %+v", r.Last())
	}
}
