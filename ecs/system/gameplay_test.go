package system

import (
	"strings"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
)

func TestTrailEmission(t *testing.T) {
	ctx := newTestContext(t, 10*time.Millisecond)
	w := ctx.World
	p0 := spawnShip(ctx, 0, cp.Vector{X: 1, Y: 2})
	spawnShip(ctx, 1, cp.Vector{X: 100})
	spawnSalvage(ctx, cp.Vector{X: -100})

	NewTrailSystem().Update(ctx)

	cases := []struct {
		name   string
		colors component.ParticleColorLerp
	}{
		{"player_zero", component.ParticleColorLerp{Start: component.Yellow, End: component.Black}},
		{"player_one", component.ParticleColorLerp{Start: component.Purple, End: component.Black}},
		{"other_emitter", component.ParticleColorLerp{Start: component.White, End: component.Black}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := particles(w, c.colors)
			if len(got) != 1 {
				t.Fatalf("expected one particle, got %d", len(got))
			}
			e := got[0]
			if v := w.Velocities.Must(e).Vector; v != (cp.Vector{}) {
				t.Fatalf("trail particle should not move, got %v", v)
			}
			if l := w.Lifetimes.Must(e); l.Max != 2000 {
				t.Fatalf("expected 2000ms lifetime, got %v", l.Max)
			}
		})
	}

	yellow := particles(w, cases[0].colors)[0]
	if w.Transforms.Must(yellow).Position != w.Transforms.Must(p0).Position {
		t.Fatalf("trail particle not at emitter position")
	}
}

func TestTrailWaitsForTimer(t *testing.T) {
	ctx := newTestContext(t, 4*time.Millisecond)
	spawnShip(ctx, 0, cp.Vector{})
	sys := NewTrailSystem()

	sys.Update(ctx)
	sys.Update(ctx)
	if n := ctx.World.Lifetimes.Len(); n != 0 {
		t.Fatalf("expected no particles before 10ms, got %d", n)
	}
	sys.Update(ctx)
	if n := ctx.World.Lifetimes.Len(); n != 1 {
		t.Fatalf("expected one particle at 12ms, got %d", n)
	}
}

func TestBounce(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	w := ctx.World
	a := spawnShip(ctx, 0, cp.Vector{X: 10})
	b := spawnShip(ctx, 1, cp.Vector{})

	NewBounceSystem().Update(ctx)

	if v := w.Velocities.Must(a).Vector; !nearVec(v, cp.Vector{X: 1}) {
		t.Fatalf("first ship should be pushed +x, got %v", v)
	}
	if v := w.Velocities.Must(b).Vector; !nearVec(v, cp.Vector{X: -1}) {
		t.Fatalf("second ship should be pushed -x, got %v", v)
	}
	burst := particles(w, component.ParticleColorLerp{Start: component.Cyan, End: component.Blue})
	if len(burst) != 360 {
		t.Fatalf("expected 360 bounce particles, got %d", len(burst))
	}
	if l := w.Lifetimes.Must(burst[0]); l.Max != 1000 {
		t.Fatalf("expected 1000ms lifetime, got %v", l.Max)
	}
	if p := w.Transforms.Must(burst[0]).Position; p != (cp.Vector{X: 10}) {
		t.Fatalf("burst should be at the first ship, got %v", p)
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.EventBounce {
		t.Fatalf("expected one bounce event, got %v", events)
	}
}

func TestBounceApartDoesNothing(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	a := spawnShip(ctx, 0, cp.Vector{X: 24})
	spawnShip(ctx, 1, cp.Vector{})
	NewBounceSystem().Update(ctx)
	if v := ctx.World.Velocities.Must(a).Vector; v != (cp.Vector{}) {
		t.Fatalf("touching ships must not bounce, got %v", v)
	}
	if ctx.World.Lifetimes.Len() != 0 {
		t.Fatalf("no burst expected")
	}
}

func TestBounceCoincidentShips(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	w := ctx.World
	a := spawnShip(ctx, 0, cp.Vector{X: 10, Y: 10})
	b := spawnShip(ctx, 1, cp.Vector{X: 10, Y: 10})

	NewBounceSystem().Update(ctx)

	if v := w.Velocities.Must(a).Vector; !nearVec(v, cp.Vector{X: 1}) {
		t.Fatalf("first ship should be split along +x, got %v", v)
	}
	if v := w.Velocities.Must(b).Vector; !nearVec(v, cp.Vector{X: -1}) {
		t.Fatalf("second ship should be split along -x, got %v", v)
	}
}

func TestBlackHoleAbsorbsFirstOverlap(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	w := ctx.World
	spawnWell(ctx, cp.Vector{})
	far := spawnSalvage(ctx, cp.Vector{X: 200})
	first := spawnSalvage(ctx, cp.Vector{X: 5})
	second := spawnShip(ctx, 0, cp.Vector{Y: 5})
	particle := spawnParticle(ctx, 0, 1000, component.ParticleColorLerp{})

	NewBlackHoleSystem().Update(ctx)

	if w.Alive(first) {
		t.Fatalf("first overlapping entity should be absorbed")
	}
	if !w.Alive(second) || !w.Alive(far) || !w.Alive(particle) {
		t.Fatalf("only one entity per attractor may be absorbed")
	}
	if ctx.Session.Scores.Total() != 0 || w.Lifetimes.Len() != 1 {
		t.Fatalf("absorption must not score or burst")
	}
}

func TestBlackHoleNoCandidates(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	well := spawnWell(ctx, cp.Vector{})
	NewBlackHoleSystem().Update(ctx)
	if !ctx.World.Alive(well) {
		t.Fatalf("attractor must never absorb itself")
	}
}

func TestSalvageSpawn(t *testing.T) {
	ctx := newTestContext(t, time.Second)
	w := ctx.World
	sys := NewSalvageSpawnSystem()

	sys.Update(ctx)
	if w.Salvage.Len() != 0 {
		t.Fatalf("salvage spawned before 2000ms")
	}
	sys.Update(ctx)
	ents := w.Query(w.Salvage).Entities()
	if len(ents) != 1 {
		t.Fatalf("expected one salvage at 2000ms, got %d", len(ents))
	}

	e := ents[0]
	tr := w.Transforms.Must(e)
	if tr.Position.X < -512 || tr.Position.X >= 512 || tr.Position.Y < -384 || tr.Position.Y >= 384 {
		t.Fatalf("salvage outside spawn area: %v", tr.Position)
	}
	if tr.Z != 1 {
		t.Fatalf("expected z 1, got %v", tr.Z)
	}
	v := w.Velocities.Must(e).Vector
	for _, c := range []float64{v.X, v.Y} {
		if c < -2 || c > 1.8 {
			t.Fatalf("salvage speed component %v outside [-2, 1.8]", c)
		}
	}
	if !w.Trails.Has(e) || !w.Boxes.Has(e) {
		t.Fatalf("salvage must trail and collide")
	}
	if s := w.Sprites.Must(e); s.Index != 4 {
		t.Fatalf("expected salvage sprite 4, got %d", s.Index)
	}
	burst := particles(w, component.ParticleColorLerp{Start: component.Pink, End: component.Black})
	if len(burst) != 360 {
		t.Fatalf("expected 360 spawn particles, got %d", len(burst))
	}
	if w.Transforms.Must(burst[0]).Position != tr.Position {
		t.Fatalf("spawn burst not at salvage")
	}
}

func TestCollectSalvage(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	w := ctx.World
	p := spawnShip(ctx, 1, cp.Vector{X: 40, Y: 40})
	spawnShip(ctx, 0, cp.Vector{X: -300})
	s := spawnSalvage(ctx, cp.Vector{X: 40, Y: 40})
	before := w.Count()

	NewCollectSystem().Update(ctx)

	if w.Alive(s) {
		t.Fatalf("collected salvage should be destroyed")
	}
	if got := ctx.Session.Scores; got[0] != 0 || got[1] != 1 {
		t.Fatalf("expected scores [0 1], got %v", got)
	}
	burst := particles(w, component.ParticleColorLerp{Start: component.Green, End: component.Yellow})
	if len(burst) != 360 {
		t.Fatalf("expected 360 collect particles, got %d", len(burst))
	}
	for _, e := range burst {
		if w.Lifetimes.Must(e).Max != 2000 {
			t.Fatalf("expected 2000ms lifetime")
		}
	}
	if w.Transforms.Must(burst[0]).Position != w.Transforms.Must(p).Position {
		t.Fatalf("collect burst not at player")
	}
	if w.Count() != before-1+360 {
		t.Fatalf("unexpected entity count %d", w.Count())
	}
}

func TestCollectSalvageOnlyOnce(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	spawnShip(ctx, 0, cp.Vector{})
	spawnShip(ctx, 1, cp.Vector{X: 4})
	spawnSalvage(ctx, cp.Vector{X: 2})

	NewCollectSystem().Update(ctx)

	if got := ctx.Session.Scores; got.Total() != 1 || got[0] != 1 {
		t.Fatalf("salvage must be scored once, by the first ship: %v", got)
	}
}

func TestClampChangedTransforms(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"far_right", cp.Vector{X: 10000}, cp.Vector{X: 512}},
		{"far_up", cp.Vector{Y: -10000}, cp.Vector{Y: -384}},
		{"far_corner", cp.Vector{X: -9000, Y: 9000}, cp.Vector{X: -512, Y: 384}},
		{"inside", cp.Vector{X: 20, Y: -30}, cp.Vector{X: 20, Y: -30}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := newTestContext(t, 33*time.Millisecond)
			e := ctx.World.Create(ecs.With(ctx.World.Transforms, component.Transform{Position: c.in}))
			NewClampSystem().Update(ctx)
			if got := ctx.World.Transforms.Must(e).Position; got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestClampIgnoresUnchanged(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	w := ctx.World
	e := w.Create(ecs.With(w.Transforms, component.Transform{Position: cp.Vector{X: 10000}}))
	w.Flush()
	NewClampSystem().Update(ctx)
	if got := w.Transforms.Must(e).Position.X; got != 10000 {
		t.Fatalf("untouched transform should not be clamped, got %v", got)
	}
}

func TestEndGame(t *testing.T) {
	cases := []struct {
		name    string
		players int
		ended   bool
	}{
		{"two_players", 2, false},
		{"one_player", 1, true},
		{"no_players", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := newTestContext(t, 33*time.Millisecond)
			for i := 0; i < c.players; i++ {
				spawnShip(ctx, i, cp.Vector{X: float64(i) * 100})
			}
			ctx.Session.Scores[1] = 3
			NewEndGameSystem().Update(ctx)
			summary, ended := ctx.Ended()
			if ended != c.ended {
				t.Fatalf("ended=%v, want %v", ended, c.ended)
			}
			if !ended {
				return
			}
			want := "Player 1 scored 0 points.\nPlayer 2 scored 3 points.\n"
			if summary != want {
				t.Fatalf("unexpected summary %q", summary)
			}
			if lines := strings.Split(strings.TrimSuffix(summary, "\n"), "\n"); len(lines) != 2 {
				t.Fatalf("expected two lines, got %d", len(lines))
			}
		})
	}
}

func TestEndGameUsesSummarizer(t *testing.T) {
	ctx := newTestContext(t, 33*time.Millisecond)
	ctx.Summary = SummaryFunc(func(s Scores) string { return "custom" })
	NewEndGameSystem().Update(ctx)
	if got, _ := ctx.Ended(); got != "custom" {
		t.Fatalf("expected custom summary, got %q", got)
	}
	events := ctx.World.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.EventSessionEnded || events[0].Data != "custom" {
		t.Fatalf("unexpected events %v", events)
	}
}
