package telemetry

import (
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/system"
	"go.uber.org/zap"
)

// Recorder collects per-session frame times and gameplay event counts and
// writes one row per finished session.
type Recorder struct {
	out     *Output
	log     *zap.Logger
	session int
	active  bool
	frames  []float64
	counts  map[ecs.EventKind]int
	last    SessionRecord
}

func NewRecorder(out *Output, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{out: out, log: log, counts: make(map[ecs.EventKind]int)}
}

func (r *Recorder) SessionStarted() {
	r.session++
	r.active = true
	r.frames = r.frames[:0]
	clear(r.counts)
}

func (r *Recorder) Tick(elapsed time.Duration) {
	if !r.active {
		return
	}
	r.frames = append(r.frames, float64(elapsed)/float64(time.Millisecond))
}

func (r *Recorder) Event(evt ecs.Event) {
	if !r.active {
		return
	}
	r.counts[evt.Kind]++
}

// SessionEnded writes the session row. Write failures are logged and the
// game carries on.
func (r *Recorder) SessionEnded(summary string, scores system.Scores) {
	if !r.active {
		return
	}
	r.active = false

	fs := ComputeFrameStats(r.frames)
	var duration float64
	for _, f := range r.frames {
		duration += f
	}
	rec := SessionRecord{
		Session:          r.session,
		Ticks:            len(r.frames),
		DurationMS:       duration,
		MeanFrameMS:      fs.Mean,
		P50FrameMS:       fs.P50,
		P95FrameMS:       fs.P95,
		MaxFrameMS:       fs.Max,
		SalvageSpawned:   r.counts[ecs.EventSalvageSpawned],
		SalvageCollected: r.counts[ecs.EventSalvageCollected],
		Absorbed:         r.counts[ecs.EventAbsorbed],
		Bounces:          r.counts[ecs.EventBounce],
		TotalScore:       scores.Total(),
		Scores:           joinScores(scores),
	}
	r.last = rec

	r.log.Info("session finished",
		zap.Int("session", rec.Session),
		zap.Int("ticks", rec.Ticks),
		zap.Float64("mean_frame_ms", rec.MeanFrameMS),
		zap.Float64("p95_frame_ms", rec.P95FrameMS),
		zap.String("scores", rec.Scores),
		zap.Int("summary_bytes", len(summary)),
	)
	if err := r.out.Write(rec); err != nil {
		r.log.Error("telemetry write failed", zap.Error(err))
	}
}

// Last is the most recently finished session.
func (r *Recorder) Last() SessionRecord {
	return r.last
}

func (r *Recorder) Close() error {
	return r.out.Close()
}

func joinScores(s system.Scores) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}
