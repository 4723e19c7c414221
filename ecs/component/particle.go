package component

// ParticleLifetime ages in milliseconds; the particle dies once Elapsed
// exceeds Max.
type ParticleLifetime struct {
	Elapsed float64
	Max     float64
}

// Fraction is Elapsed/Max, or 1 for a zero-length lifetime.
func (l ParticleLifetime) Fraction() float64 {
	if l.Max <= 0 {
		return 1
	}
	return l.Elapsed / l.Max
}

type ParticleColorLerp struct {
	Start Color
	End   Color
}
