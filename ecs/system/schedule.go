package system

import "github.com/milk9111/gravitywell/ecs"

// NewPlayingScheduler returns the systems of one playing tick in order.
// Later systems observe the moves and deaths of earlier ones.
func NewPlayingScheduler() *ecs.Scheduler[*Context] {
	return ecs.NewScheduler[*Context](
		NewPlayerControlSystem(),
		NewVelocitySystem(),
		NewAttractionSystem(),
		NewParticleAgingSystem(),
		NewParticleColorSystem(),
		NewTrailSystem(),
		NewBounceSystem(),
		NewBlackHoleSystem(),
		NewSalvageSpawnSystem(),
		NewClampSystem(),
		NewCollectSystem(),
		NewEndGameSystem(),
	)
}
